package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/zagros/backoffice/internal/product/domain"
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
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}

	// SKU defaults to a slug of the name; explicit SKUs are slugged too so
	// Kurdish/Arabic names become stable ASCII codes.
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		sku = name
	}
	sku = strings.ToUpper(slug.Make(sku))
	if sku == "" {
		return domain.Product{}, domain.ErrInvalidSKU
	}

	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.Product{}, err
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:         s.genID.Generate(),
		SKU:        sku,
		Name:       name,
		CategoryID: categoryID,
		PriceIQD:   req.PriceIQD,
		PriceUSD:   req.PriceUSD,
		Cost:       req.Cost,
		Stock:      req.Stock,
		ImageURL:   strings.TrimSpace(req.ImageURL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Product{}, domain.ErrSKUTaken
		}
		return domain.Product{}, err
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Product{}, domain.ErrInvalidName
		}
		product.Name = name
	}
	if req.CategoryID != nil {
		categoryID, err := parseOptionalID(*req.CategoryID)
		if err != nil {
			return domain.Product{}, err
		}
		product.CategoryID = categoryID
	}
	if req.PriceIQD != nil {
		product.PriceIQD = *req.PriceIQD
	}
	if req.PriceUSD != nil {
		product.PriceUSD = *req.PriceUSD
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, product); err != nil {
		return domain.Product{}, err
	}
	return *product, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Product, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}
	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListProductRequest) (domain.ListProductResponse, error) {
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	filter := domain.ListProductFilter{
		Search:     strings.TrimSpace(req.Search),
		CategoryID: categoryID,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListProductResponse{}, err
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, *item)
	}

	return domain.ListProductResponse{
		Products:   products,
		Pagination: pagination.BuildPageInfo(page, total),
	}, nil
}

func (s *Service) AdjustStock(ctx context.Context, rawID string, delta int64) (domain.Product, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	if err := s.repo.AdjustStock(ctx, s.db, id, delta); err != nil {
		return domain.Product{}, err
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	items, err := s.repo.ListCategories(ctx, s.db)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(items))
	for _, item := range items {
		categories = append(categories, *item)
	}
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.ErrInvalidName
	}
	category := domain.Category{
		ID:        s.genID.Generate(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertCategory(ctx, s.db, &category); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Category{}, domain.ErrInvalidName
		}
		return domain.Category{}, err
	}
	return category, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func parseOptionalID(value string) (*snowflake.ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(trimmed)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}
	return &id, nil
}
