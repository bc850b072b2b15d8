package product

import (
	"github.com/zagros/backoffice/internal/product/repository"
	"github.com/zagros/backoffice/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
