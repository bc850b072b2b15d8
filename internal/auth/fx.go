package auth

import (
	"github.com/zagros/backoffice/internal/auth/repository"
	"github.com/zagros/backoffice/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
