package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/sale/domain"
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
		log:   p.Log.Named("sale.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSaleRequest) (domain.Sale, error) {
	saleType := req.Type
	if saleType == "" {
		saleType = domain.SaleTypeRetail
	}
	if !saleType.Valid() {
		return domain.Sale{}, domain.ErrInvalidType
	}

	var customerID *snowflake.ID
	if trimmed := strings.TrimSpace(req.CustomerID); trimmed != "" {
		id, err := snowflake.ParseString(trimmed)
		if err != nil || id == 0 {
			return domain.Sale{}, domain.ErrInvalidID
		}
		customerID = &id
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		ID:         s.genID.Generate(),
		Type:       saleType,
		CustomerID: customerID,
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSaleRequest) (domain.Sale, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Sale{}, err
	}

	sale, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if sale == nil {
		return domain.Sale{}, domain.ErrNotFound
	}

	if req.Type != nil {
		if !req.Type.Valid() {
			return domain.Sale{}, domain.ErrInvalidType
		}
		sale.Type = *req.Type
	}
	if req.Notes != nil {
		sale.Notes = strings.TrimSpace(*req.Notes)
	}
	sale.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, sale); err != nil {
		return domain.Sale{}, err
	}
	return *sale, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	sale, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Sale, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Sale{}, err
	}
	sale, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if sale == nil {
		return domain.Sale{}, domain.ErrNotFound
	}
	return *sale, nil
}

func (s *Service) List(ctx context.Context, req domain.ListSaleRequest) (domain.ListSaleResponse, error) {
	filter := domain.ListSaleFilter{
		Type:      strings.TrimSpace(req.Type),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if trimmed := strings.TrimSpace(req.CustomerID); trimmed != "" {
		id, err := snowflake.ParseString(trimmed)
		if err != nil || id == 0 {
			return domain.ListSaleResponse{}, domain.ErrInvalidID
		}
		filter.CustomerID = &id
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListSaleResponse{}, err
	}

	sales := make([]domain.Sale, 0, len(items))
	for _, item := range items {
		sales = append(sales, *item)
	}

	return domain.ListSaleResponse{
		Sales:      sales,
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
