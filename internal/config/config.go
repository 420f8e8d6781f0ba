// Package config loads binary configuration with viper: defaults, then an
// optional depselect.yaml, then environment variables (highest priority).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Lookup LookupConfig
	DB     DBConfig
	UI     UIConfig
}

type AppConfig struct {
	Env      string // development, production
	LogLevel string
	Locale   string
}

type HTTPConfig struct {
	Addr     string
	BasePath string
}

type LookupConfig struct {
	// URL is the origin of the box lookup endpoint used by clients.
	URL string
	// InventoryFile is a YAML inventory served by the endpoint when no
	// database is configured.
	InventoryFile string
}

type DBConfig struct {
	DatabaseURL string
}

// UIConfig customises the server-rendered form.
type UIConfig struct {
	// ThemeFile is a YAML or JSON go-theme manifest whose tokens become CSS
	// variables on the form.
	ThemeFile    string
	ThemeVariant string
	// TemplatesDir holds form.tpl/options.tpl overrides; missing files fall
	// back to the embedded templates.
	TemplatesDir string
}

const (
	keyEnv           = "app_env"
	keyLogLevel      = "log_level"
	keyLocale        = "locale"
	keyHTTPAddr      = "http_addr"
	keyBasePath      = "base_path"
	keyLookupURL     = "lookup_url"
	keyInventoryFile = "inventory_file"
	keyDatabaseURL   = "database_url"
	keyThemeFile     = "theme_file"
	keyThemeVariant  = "theme_variant"
	keyTemplatesDir  = "templates_dir"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyEnv, "development")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLocale, "en")
	v.SetDefault(keyHTTPAddr, ":8080")
	v.SetDefault(keyBasePath, "")
	v.SetDefault(keyLookupURL, "http://localhost:8080")
	v.SetDefault(keyInventoryFile, "")
	v.SetDefault(keyDatabaseURL, "")
	v.SetDefault(keyThemeFile, "")
	v.SetDefault(keyThemeVariant, "")
	v.SetDefault(keyTemplatesDir, "")
}

// Load reads configuration. An empty path searches for depselect.yaml in the
// working directory and ./config; a missing file is not an error unless path
// was given explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("depselect")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString(keyEnv),
			LogLevel: v.GetString(keyLogLevel),
			Locale:   v.GetString(keyLocale),
		},
		HTTP: HTTPConfig{
			Addr:     v.GetString(keyHTTPAddr),
			BasePath: v.GetString(keyBasePath),
		},
		Lookup: LookupConfig{
			URL:           v.GetString(keyLookupURL),
			InventoryFile: v.GetString(keyInventoryFile),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString(keyDatabaseURL),
		},
		UI: UIConfig{
			ThemeFile:    v.GetString(keyThemeFile),
			ThemeVariant: v.GetString(keyThemeVariant),
			TemplatesDir: v.GetString(keyTemplatesDir),
		},
	}
	return cfg, nil
}
