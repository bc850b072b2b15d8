package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/employee/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, employee *domain.Employee) error {
	return conn.WithContext(ctx).Create(employee).Error
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, employee *domain.Employee) error {
	return conn.WithContext(ctx).Save(employee).Error
}

func (r *repo) Delete(ctx context.Context, conn *gorm.DB, id snowflake.ID) error {
	return conn.WithContext(ctx).Delete(&domain.Employee{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, conn *gorm.DB, id snowflake.ID) (*domain.Employee, error) {
	var employee domain.Employee
	err := conn.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repo) FindByUsername(ctx context.Context, conn *gorm.DB, username string) (*domain.Employee, error) {
	var employee domain.Employee
	err := conn.WithContext(ctx).First(&employee, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

var sortColumns = map[string]string{
	"name":      "name",
	"username":  "username",
	"role":      "role",
	"createdAt": "created_at",
}

func (r *repo) List(ctx context.Context, conn *gorm.DB, filter domain.ListEmployeeFilter, page pagination.Pagination) ([]*domain.Employee, int64, error) {
	stmt := conn.WithContext(ctx).Model(&domain.Employee{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where("name LIKE ? OR username LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	if filter.Role != "" {
		stmt = stmt.Where("role = ?", filter.Role)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []*domain.Employee
	err := page.Apply(stmt).
		Order(db.OrderClause(filter.SortBy, filter.SortOrder, sortColumns, "created_at desc, id desc")).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}
