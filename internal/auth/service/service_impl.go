package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/zagros/backoffice/internal/auth/domain"
	"github.com/zagros/backoffice/internal/auth/password"
	"github.com/zagros/backoffice/internal/auth/repository"
	"github.com/zagros/backoffice/internal/config"
	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
	"github.com/zagros/backoffice/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config    config.Config
	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Sessions  repository.Repository
	Employees employeedomain.Repository
	Limiter   *ratelimit.LoginLimiter
}

type Service struct {
	cfg       config.Config
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	sessions  repository.Repository
	employees employeedomain.Repository
	limiter   *ratelimit.LoginLimiter
}

func New(p Params) domain.Service {
	return &Service{
		cfg:       p.Config,
		db:        p.DB,
		log:       p.Log.Named("auth.service"),
		genID:     p.GenID,
		sessions:  p.Sessions,
		employees: p.Employees,
		limiter:   p.Limiter,
	}
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrBadCredentials
	}

	if result := s.limiter.Allow(ctx, username); !result.Allowed {
		s.log.Warn("login throttled", zap.String("username", username))
		return domain.LoginResponse{}, domain.ErrTooManyAttempts
	}

	employee, err := s.employees.FindByUsername(ctx, s.db, username)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if employee == nil || !password.Verify(req.Password, employee.PasswordHash) {
		// Same answer for unknown user and wrong password.
		return domain.LoginResponse{}, domain.ErrBadCredentials
	}
	if employee.Status != employeedomain.StatusActive {
		return domain.LoginResponse{}, domain.ErrAccountDisabled
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:         s.genID.Generate(),
		Token:      uuid.NewString(),
		EmployeeID: employee.ID,
		Role:       employee.Role,
		ExpiresAt:  now.Add(time.Duration(s.cfg.SessionTTLMinutes) * time.Minute),
		CreatedAt:  now,
	}
	if err := s.sessions.Insert(ctx, s.db, &session); err != nil {
		return domain.LoginResponse{}, err
	}

	s.log.Info("login",
		zap.String("username", username),
		zap.String("role", string(employee.Role)))

	return domain.LoginResponse{
		Token: session.Token,
		Identity: domain.Identity{
			EmployeeID: employee.ID,
			Name:       employee.Name,
			Username:   employee.Username,
			Role:       employee.Role,
		},
	}, nil
}

func (s *Service) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, domain.ErrSessionExpired
	}

	session, err := s.sessions.FindByToken(ctx, s.db, token)
	if err != nil {
		return domain.Identity{}, err
	}
	if session == nil {
		return domain.Identity{}, domain.ErrSessionExpired
	}

	now := time.Now().UTC()
	if session.Expired(now) {
		_ = s.sessions.DeleteByToken(ctx, s.db, token)
		return domain.Identity{}, domain.ErrSessionExpired
	}

	employee, err := s.employees.FindByID(ctx, s.db, session.EmployeeID)
	if err != nil {
		return domain.Identity{}, err
	}
	if employee == nil || employee.Status != employeedomain.StatusActive {
		_ = s.sessions.DeleteByToken(ctx, s.db, token)
		return domain.Identity{}, domain.ErrSessionExpired
	}

	return domain.Identity{
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Username:   employee.Username,
		Role:       employee.Role,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, s.db, token)
}
