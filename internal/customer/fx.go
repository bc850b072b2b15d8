package customer

import (
	"github.com/zagros/backoffice/internal/customer/repository"
	"github.com/zagros/backoffice/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
