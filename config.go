package nylas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIServer is used when a Config does not name an API server.
const DefaultAPIServer = "https://api.nylas.com"

// Config holds the application credentials and the API server every
// request targets. It is handed to NewClient once and read by all
// request-issuing code afterwards; there is no package-level state.
type Config struct {
	// ClientID identifies the Nylas application.
	ClientID string `mapstructure:"client_id" yaml:"client_id"`

	// ClientSecret authenticates management requests (paths under
	// /a/) and the authorization-code exchange.
	ClientSecret string `mapstructure:"client_secret" yaml:"client_secret"`

	// APIServer is the fully-qualified base URL of the API. Defaults
	// to DefaultAPIServer when empty; must include a scheme when set.
	APIServer string `mapstructure:"api_server" yaml:"api_server"`
}

// withDefaults validates cfg and fills in the default API server.
func (c Config) withDefaults() (Config, error) {
	if c.APIServer == "" {
		c.APIServer = DefaultAPIServer
		return c, nil
	}
	if !strings.Contains(c.APIServer, "://") {
		return c, &InvalidArgumentError{
			Argument: "APIServer",
			Message: fmt.Sprintf(
				"%q is not a fully-qualified URL (missing scheme)",
				c.APIServer,
			),
		}
	}
	return c, nil
}

// clientCredentials reports whether both application credentials are
// present, which selects the management flavor of account access.
func (c Config) clientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// DefaultConfigPath returns the default location of the CLI
// configuration file, ~/.config/nylas/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "nylas", "config.yaml")
}

// LoadConfigFile reads a Config from the given YAML file using Viper.
// A missing file yields a zero Config (with the default API server)
// rather than an error, so first runs work without setup.
func LoadConfigFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("api_server", DefaultAPIServer)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return Config{APIServer: DefaultAPIServer}, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Config{APIServer: DefaultAPIServer}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfigFile writes cfg to a YAML file at path, creating parent
// directories if needed.
func SaveConfigFile(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("client_id", cfg.ClientID)
	v.Set("client_secret", cfg.ClientSecret)
	v.Set("api_server", cfg.APIServer)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
