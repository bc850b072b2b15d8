package employee

import (
	"github.com/zagros/backoffice/internal/employee/repository"
	"github.com/zagros/backoffice/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
