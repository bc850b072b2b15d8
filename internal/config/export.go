package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// ExportSettings controls generated documents: paper size, orientation,
// fonts, colors and header/footer toggles for PDF, spreadsheet and print
// HTML output.
type ExportSettings struct {
	PaperSize      string `mapstructure:"paperSize"`
	Orientation    string `mapstructure:"orientation"`
	FontSize       int    `mapstructure:"fontSize"`
	TitleFontSize  int    `mapstructure:"titleFontSize"`
	HeaderColor    string `mapstructure:"headerColor"`
	AccentColor    string `mapstructure:"accentColor"`
	ShowHeader     bool   `mapstructure:"showHeader"`
	ShowFooter     bool   `mapstructure:"showFooter"`
	ShowPageNumber bool   `mapstructure:"showPageNumber"`
	CompanyName    string `mapstructure:"companyName"`
	CompanyPhone   string `mapstructure:"companyPhone"`
	LogoPath       string `mapstructure:"logoPath"`
}

func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		PaperSize:      "A4",
		Orientation:    "portrait",
		FontSize:       9,
		TitleFontSize:  16,
		HeaderColor:    "#1a1f36",
		AccentColor:    "#006aff",
		ShowHeader:     true,
		ShowFooter:     true,
		ShowPageNumber: true,
		CompanyName:    "Zagros Trading",
	}
}

// LoadExportSettings reads export.yaml, falling back to defaults when the
// file is absent. Settings are loaded once at startup.
func LoadExportSettings(cfg Config) (ExportSettings, error) {
	v := viper.New()
	v.SetConfigFile(cfg.ExportSettingsPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("EXPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultExportSettings()
	v.SetDefault("export.paperSize", defaults.PaperSize)
	v.SetDefault("export.orientation", defaults.Orientation)
	v.SetDefault("export.fontSize", defaults.FontSize)
	v.SetDefault("export.titleFontSize", defaults.TitleFontSize)
	v.SetDefault("export.headerColor", defaults.HeaderColor)
	v.SetDefault("export.accentColor", defaults.AccentColor)
	v.SetDefault("export.showHeader", defaults.ShowHeader)
	v.SetDefault("export.showFooter", defaults.ShowFooter)
	v.SetDefault("export.showPageNumber", defaults.ShowPageNumber)
	v.SetDefault("export.companyName", defaults.CompanyName)
	v.SetDefault("export.companyPhone", defaults.CompanyPhone)
	v.SetDefault("export.logoPath", defaults.LogoPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing file is fine, a malformed one is not. For an explicit
		// SetConfigFile path viper surfaces fs.ErrNotExist instead of its
		// own not-found type.
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return ExportSettings{}, err
		}
	}

	var settings ExportSettings
	if err := v.UnmarshalKey("export", &settings); err != nil {
		return ExportSettings{}, err
	}

	return settings, nil
}
