package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/warrior-graph/sonic-cfggen/internal/configdb"
	"github.com/warrior-graph/sonic-cfggen/pkg/tmplcache"
)

// Config holds application configuration loaded from environment
// variables, .env files, and an optional config file. Command-line flags
// carry the per-invocation inputs (data files, template, output form) and
// are handled by cobra directly.
type Config struct {
	// Live configuration store
	StoreAddr      string
	StoreDB        int
	StoreSeparator string

	// Template-compilation cache
	CacheAddr    string
	CacheEnabled bool

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration in order of precedence: environment
// variables, .env file, config file (~/.sonic-cfggen.yaml), defaults.
func LoadConfig() (*Config, error) {
	// .env before viper binds the environment
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CFGGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sonic-cfggen")
	}
	_ = viper.ReadInConfig() // absent config file is fine

	storeDefaults := configdb.DefaultConfig()
	viper.SetDefault("store_addr", storeDefaults.Addr)
	viper.SetDefault("store_db", storeDefaults.DB)
	viper.SetDefault("store_separator", storeDefaults.Separator)
	viper.SetDefault("cache_addr", tmplcache.DefaultAddr)
	viper.SetDefault("cache_enabled", true)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "auto")

	return &Config{
		StoreAddr:      viper.GetString("store_addr"),
		StoreDB:        viper.GetInt("store_db"),
		StoreSeparator: viper.GetString("store_separator"),
		CacheAddr:      viper.GetString("cache_addr"),
		CacheEnabled:   viper.GetBool("cache_enabled"),
		LogLevel:       viper.GetString("log_level"),
		LogFormat:      viper.GetString("log_format"),
	}, nil
}

// StoreConfig converts the app config to a store client config.
func (c *Config) StoreConfig() configdb.Config {
	return configdb.Config{
		Addr:      c.StoreAddr,
		DB:        c.StoreDB,
		Separator: c.StoreSeparator,
	}
}
