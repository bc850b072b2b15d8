package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/zagros/backoffice/internal/config"
	"github.com/zagros/backoffice/internal/migration"
	"github.com/zagros/backoffice/internal/server"
	"github.com/zagros/backoffice/pkg/db"
	"github.com/zagros/backoffice/pkg/log"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
