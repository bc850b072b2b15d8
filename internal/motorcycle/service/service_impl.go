package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/zagros/backoffice/internal/motorcycle/domain"
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
		log:   p.Log.Named("motorcycle.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMotorcycleRequest) (domain.Motorcycle, error) {
	brand := strings.TrimSpace(req.Brand)
	if brand == "" {
		return domain.Motorcycle{}, domain.ErrInvalidBrand
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return domain.Motorcycle{}, domain.ErrInvalidModel
	}

	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		sku = fmt.Sprintf("%s %s %d", brand, model, req.Year)
	}
	sku = strings.ToUpper(slug.Make(sku))
	if sku == "" {
		return domain.Motorcycle{}, domain.ErrInvalidSKU
	}

	now := time.Now().UTC()
	motorcycle := domain.Motorcycle{
		ID:        s.genID.Generate(),
		SKU:       sku,
		Brand:     brand,
		Model:     model,
		Year:      req.Year,
		Color:     strings.TrimSpace(req.Color),
		ChassisNo: strings.TrimSpace(req.ChassisNo),
		PriceUSD:  req.PriceUSD,
		Cost:      req.Cost,
		Stock:     req.Stock,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &motorcycle); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Motorcycle{}, domain.ErrSKUTaken
		}
		return domain.Motorcycle{}, err
	}
	return motorcycle, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateMotorcycleRequest) (domain.Motorcycle, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Motorcycle{}, err
	}

	motorcycle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Motorcycle{}, err
	}
	if motorcycle == nil {
		return domain.Motorcycle{}, domain.ErrNotFound
	}

	if req.Brand != nil {
		brand := strings.TrimSpace(*req.Brand)
		if brand == "" {
			return domain.Motorcycle{}, domain.ErrInvalidBrand
		}
		motorcycle.Brand = brand
	}
	if req.Model != nil {
		model := strings.TrimSpace(*req.Model)
		if model == "" {
			return domain.Motorcycle{}, domain.ErrInvalidModel
		}
		motorcycle.Model = model
	}
	if req.Year != nil {
		motorcycle.Year = *req.Year
	}
	if req.Color != nil {
		motorcycle.Color = strings.TrimSpace(*req.Color)
	}
	if req.ChassisNo != nil {
		motorcycle.ChassisNo = strings.TrimSpace(*req.ChassisNo)
	}
	if req.PriceUSD != nil {
		motorcycle.PriceUSD = *req.PriceUSD
	}
	if req.Cost != nil {
		motorcycle.Cost = *req.Cost
	}
	if req.ImageURL != nil {
		motorcycle.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	motorcycle.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, motorcycle); err != nil {
		return domain.Motorcycle{}, err
	}
	return *motorcycle, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	motorcycle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if motorcycle == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Motorcycle, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Motorcycle{}, err
	}
	motorcycle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Motorcycle{}, err
	}
	if motorcycle == nil {
		return domain.Motorcycle{}, domain.ErrNotFound
	}
	return *motorcycle, nil
}

func (s *Service) List(ctx context.Context, req domain.ListMotorcycleRequest) (domain.ListMotorcycleResponse, error) {
	filter := domain.ListMotorcycleFilter{
		Search:    strings.TrimSpace(req.Search),
		Brand:     strings.TrimSpace(req.Brand),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListMotorcycleResponse{}, err
	}

	motorcycles := make([]domain.Motorcycle, 0, len(items))
	for _, item := range items {
		motorcycles = append(motorcycles, *item)
	}

	return domain.ListMotorcycleResponse{
		Motorcycles: motorcycles,
		Pagination:  pagination.BuildPageInfo(page, total),
	}, nil
}

func (s *Service) AdjustStock(ctx context.Context, rawID string, delta int64) (domain.Motorcycle, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Motorcycle{}, err
	}

	if err := s.repo.AdjustStock(ctx, s.db, id, delta); err != nil {
		return domain.Motorcycle{}, err
	}

	motorcycle, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Motorcycle{}, err
	}
	if motorcycle == nil {
		return domain.Motorcycle{}, domain.ErrNotFound
	}
	return *motorcycle, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
