package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Keys KeysConfig `mapstructure:"keys"`
	Log  LogConfig  `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Width          int    `mapstructure:"width"`
	AltScreen      bool   `mapstructure:"alt_screen"`
	Mouse          bool   `mapstructure:"mouse"`
}

// KeysConfig lists the keys bound to each screen action.
type KeysConfig struct {
	Checkout []string `mapstructure:"checkout"`
	Dismiss  []string `mapstructure:"dismiss"`
	Quit     []string `mapstructure:"quit"`
}

// LogConfig holds log sink settings. An empty Path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix SHOPPINGCART_.
// An explicit path (or $SHOPPINGCART_CONFIG) must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.width", 60)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("keys.checkout", []string{"enter", "c"})
	v.SetDefault("keys.dismiss", []string{"esc", "d"})
	v.SetDefault("keys.quit", []string{"q", "ctrl+c"})
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SHOPPINGCART_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shoppingcart"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOPPINGCART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width <= 0 {
		c.UI.Width = 60
	}
	return c, nil
}
