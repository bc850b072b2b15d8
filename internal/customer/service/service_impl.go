package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/customer/domain"
	"github.com/zagros/backoffice/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	notifyType := req.NotifyType
	if notifyType == "" {
		notifyType = domain.NotifyNone
	}
	switch notifyType {
	case domain.NotifyNone, domain.NotifySMS, domain.NotifyPhone:
	default:
		return domain.Customer{}, domain.ErrInvalidNotifyType
	}

	attachments, err := encodeAttachments(req.Attachments)
	if err != nil {
		return domain.Customer{}, err
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:              s.genID.Generate(),
		Name:            name,
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		Address:         strings.TrimSpace(req.Address),
		City:            strings.TrimSpace(req.City),
		NotifyThreshold: req.NotifyThreshold,
		NotifyType:      notifyType,
		Attachments:     attachments,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Customer{}, domain.ErrInvalidName
		}
		customer.Name = name
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		customer.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		customer.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		customer.City = strings.TrimSpace(*req.City)
	}
	if req.NotifyThreshold != nil {
		customer.NotifyThreshold = *req.NotifyThreshold
	}
	if req.NotifyType != nil {
		switch *req.NotifyType {
		case domain.NotifyNone, domain.NotifySMS, domain.NotifyPhone:
			customer.NotifyType = *req.NotifyType
		default:
			return domain.Customer{}, domain.ErrInvalidNotifyType
		}
	}
	if req.Attachments != nil {
		attachments, err := encodeAttachments(*req.Attachments)
		if err != nil {
			return domain.Customer{}, err
		}
		customer.Attachments = attachments
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, customer); err != nil {
		return domain.Customer{}, err
	}
	return *customer, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Customer, error) {
	id, err := parseID(rawID)
	if err != nil {
		return domain.Customer{}, err
	}
	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	filter := domain.ListCustomerFilter{
		Search:    strings.TrimSpace(req.Search),
		City:      strings.TrimSpace(req.City),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	page := req.Pagination.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		customers = append(customers, *item)
	}

	return domain.ListCustomerResponse{
		Customers:  customers,
		Pagination: pagination.BuildPageInfo(page, total),
	}, nil
}

func encodeAttachments(urls []string) (datatypes.JSON, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
