package migration

import (
	"github.com/bwmarrin/snowflake"
	"github.com/zagros/backoffice/internal/config"
	"github.com/zagros/backoffice/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node, log *zap.Logger) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		if err := RunMigrations(sqlDB, cfg.DBType); err != nil {
			return err
		}

		created, err := seed.EnsureAdmin(conn, genID, cfg.BootstrapAdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info("bootstrapped initial admin account")
		}
		return nil
	}),
)
