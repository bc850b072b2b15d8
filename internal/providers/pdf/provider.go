// Package pdf renders invoices and catalog tables with maroto.
package pdf

import (
	"context"
	"io"
	"os"

	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	appconfig "github.com/zagros/backoffice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
	GenerateTable(ctx context.Context, data TableData) (io.Reader, error)
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Settings appconfig.ExportSettings
}

type PDFProvider struct {
	log      *zap.Logger
	settings appconfig.ExportSettings
}

func New(p Params) Provider {
	return &PDFProvider{
		log:      p.Log.Named("pdf.provider"),
		settings: p.Settings,
	}
}

var Module = fx.Module("pdf.provider",
	fx.Provide(New),
)

func (p *PDFProvider) buildConfig() *entity.Config {
	builder := config.NewBuilder().
		WithPageSize(paperSize(p.settings.PaperSize)).
		WithDefaultFont(&props.Font{Size: float64(p.settings.FontSize)})

	if p.settings.Orientation == "landscape" {
		builder = builder.WithOrientation(orientation.Horizontal)
	}
	if p.settings.ShowPageNumber {
		builder = builder.WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		})
	}
	return builder.Build()
}

func paperSize(name string) pagesize.Type {
	switch name {
	case "letter", "Letter":
		return pagesize.Letter
	case "A5":
		return pagesize.A5
	default:
		return pagesize.A4
	}
}

// logoPath returns the configured logo only when it is actually readable.
// A broken image never fails the document, the header just loses it.
func (p *PDFProvider) logoPath() string {
	if p.settings.LogoPath == "" {
		return ""
	}
	if _, err := os.Stat(p.settings.LogoPath); err != nil {
		p.log.Warn("logo unreadable, rendering without it",
			zap.String("path", p.settings.LogoPath),
			zap.Error(err))
		return ""
	}
	return p.settings.LogoPath
}
