package repository

import (
	"context"
	"errors"
	"time"

	"github.com/zagros/backoffice/internal/auth/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, session *domain.Session) error
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, db *gorm.DB, token string) error
	DeleteExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
}

type repo struct{}

func Provide() Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, session *domain.Session) error {
	return conn.WithContext(ctx).Create(session).Error
}

func (r *repo) FindByToken(ctx context.Context, conn *gorm.DB, token string) (*domain.Session, error) {
	var session domain.Session
	err := conn.WithContext(ctx).First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *repo) DeleteByToken(ctx context.Context, conn *gorm.DB, token string) error {
	return conn.WithContext(ctx).Delete(&domain.Session{}, "token = ?", token).Error
}

func (r *repo) DeleteExpired(ctx context.Context, conn *gorm.DB, now time.Time) (int64, error) {
	result := conn.WithContext(ctx).Delete(&domain.Session{}, "expires_at < ?", now)
	return result.RowsAffected, result.Error
}
