package sale

import (
	"github.com/zagros/backoffice/internal/sale/repository"
	"github.com/zagros/backoffice/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
