package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/auth/password"
	"github.com/zagros/backoffice/internal/employee/domain"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("employee.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateEmployeeRequest) (domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Employee{}, domain.ErrInvalidName
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return domain.Employee{}, domain.ErrInvalidUsername
	}
	if !req.Role.Valid() {
		return domain.Employee{}, domain.ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return domain.Employee{}, domain.ErrInvalidPassword
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.Employee{}, err
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		ID:           s.genID.Generate(),
		Name:         name,
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         req.Role,
		Status:       domain.StatusActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &employee); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Employee{}, domain.ErrUsernameTaken
		}
		return domain.Employee{}, err
	}

	s.log.Info("employee created", zap.String("id", employee.ID.String()), zap.String("role", string(employee.Role)))
	return employee, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateEmployeeRequest) (domain.Employee, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Employee{}, err
	}

	employee, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Employee{}, err
	}
	if employee == nil {
		return domain.Employee{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Employee{}, domain.ErrInvalidName
		}
		employee.Name = name
	}
	if req.Email != nil {
		employee.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		employee.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return domain.Employee{}, domain.ErrInvalidRole
		}
		employee.Role = *req.Role
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return domain.Employee{}, domain.ErrInvalidPassword
		}
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return domain.Employee{}, err
		}
		employee.PasswordHash = hash
	}
	employee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, employee); err != nil {
		return domain.Employee{}, err
	}
	return *employee, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	employee, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Employee, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Employee{}, err
	}
	employee, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Employee{}, err
	}
	if employee == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *employee, nil
}

func (s *Service) List(ctx context.Context, req domain.ListEmployeeRequest) (domain.ListEmployeeResponse, error) {
	filter := domain.ListEmployeeFilter{
		Search:    strings.TrimSpace(req.Search),
		Role:      strings.TrimSpace(req.Role),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListEmployeeResponse{}, err
	}

	employees := make([]domain.Employee, 0, len(items))
	for _, item := range items {
		employees = append(employees, *item)
	}

	return domain.ListEmployeeResponse{
		Employees:  employees,
		Pagination: pagination.BuildPageInfo(page, total),
	}, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
