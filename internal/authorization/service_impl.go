package authorization

import (
	"context"
	_ "embed"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed model.conf
var modelText string

// Protected objects.
const (
	ObjectCustomer   = "customer"
	ObjectProduct    = "product"
	ObjectMotorcycle = "motorcycle"
	ObjectSale       = "sale"
	ObjectInvoice    = "invoice"
	ObjectPayment    = "payment"
	ObjectEmployee   = "employee"
	ObjectDashboard  = "dashboard"
	ObjectExport     = "export"
)

// Actions.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
	ActionExport = "export"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Enforcer *casbin.SyncedEnforcer
}

type ServiceImpl struct {
	log      *zap.Logger
	enforcer *casbin.SyncedEnforcer
}

func NewEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}
	enforcer.EnableAutoSave(true)
	enforcer.EnableAutoBuildRoleLinks(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}
	if err := seedPolicies(enforcer); err != nil {
		return nil, err
	}
	enforcer.BuildRoleLinks()
	return enforcer, nil
}

func NewService(p Params) Service {
	return &ServiceImpl{
		log:      p.Log.Named("authorization.service"),
		enforcer: p.Enforcer,
	}
}

var Module = fx.Module("authorization.service",
	fx.Provide(NewEnforcer),
	fx.Provide(NewService),
)

func (s *ServiceImpl) Authorize(ctx context.Context, role string, object string, action string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return ErrInvalidRole
	}
	object = strings.TrimSpace(object)
	if object == "" {
		return ErrInvalidObject
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return ErrInvalidAction
	}

	allowed, err := s.enforcer.Enforce("role:"+role, object, action)
	if err != nil {
		return err
	}
	if !allowed {
		s.log.Debug("authorization denied",
			zap.String("role", role),
			zap.String("object", object),
			zap.String("action", action))
		return ErrForbidden
	}
	return nil
}

var allObjects = []string{
	ObjectCustomer,
	ObjectProduct,
	ObjectMotorcycle,
	ObjectSale,
	ObjectInvoice,
	ObjectPayment,
	ObjectDashboard,
	ObjectExport,
}

// seedPolicies installs the fixed role matrix. viewer reads; cashier also
// writes invoices and payments; employee reads and writes everything but
// cannot delete; developer and admin can do anything, and only admin
// manages employee accounts.
func seedPolicies(enforcer *casbin.SyncedEnforcer) error {
	policies := [][]string{}

	for _, object := range allObjects {
		policies = append(policies,
			[]string{"role:viewer", object, ActionRead},
			[]string{"role:cashier", object, ActionRead},
			[]string{"role:employee", object, ActionRead},
			[]string{"role:employee", object, ActionWrite},
		)
	}

	policies = append(policies,
		[]string{"role:cashier", ObjectInvoice, ActionWrite},
		[]string{"role:cashier", ObjectPayment, ActionWrite},
		[]string{"role:employee", ObjectExport, ActionExport},
	)

	for _, role := range []string{"role:developer", "role:admin"} {
		for _, object := range allObjects {
			policies = append(policies,
				[]string{role, object, ActionRead},
				[]string{role, object, ActionWrite},
				[]string{role, object, ActionDelete},
			)
		}
		policies = append(policies, []string{role, ObjectExport, ActionExport})
	}

	policies = append(policies,
		[]string{"role:admin", ObjectEmployee, ActionRead},
		[]string{"role:admin", ObjectEmployee, ActionWrite},
		[]string{"role:admin", ObjectEmployee, ActionDelete},
	)

	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			return err
		}
	}
	return nil
}
