package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/ledger/domain"
	"gorm.io/gorm"
)

type historyRepo struct{}

func Provide() domain.HistoryRepository {
	return &historyRepo{}
}

func (r *historyRepo) Insert(ctx context.Context, conn *gorm.DB, record *domain.BalanceHistory) error {
	return conn.WithContext(ctx).Create(record).Error
}

func (r *historyRepo) ListByCustomer(ctx context.Context, conn *gorm.DB, customerID snowflake.ID) ([]*domain.BalanceHistory, error) {
	var records []*domain.BalanceHistory
	err := conn.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("occurred_at desc, id desc").
		Find(&records).Error
	return records, err
}
