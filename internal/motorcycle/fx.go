package motorcycle

import (
	"github.com/zagros/backoffice/internal/motorcycle/repository"
	"github.com/zagros/backoffice/internal/motorcycle/service"
	"go.uber.org/fx"
)

var Module = fx.Module("motorcycle.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
