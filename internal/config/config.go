package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string `mapstructure:"port"`
		MetricsPort string `mapstructure:"metrics_port"`
		TemplateDir string `mapstructure:"template_dir"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"` // sqlite or postgres
		Path     string `mapstructure:"path"`   // sqlite file
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Auth struct {
		// AllowKeyBootstrap leaves POST /api/admin/key open to
		// unauthenticated callers so a first admin key can be minted.
		// The upstream behavior is "open"; flip this off once the
		// first key exists.
		AllowKeyBootstrap   bool `mapstructure:"allow_key_bootstrap"`
		DefaultValidityDays int  `mapstructure:"default_validity_days"`
	} `mapstructure:"auth"`
}

func Load() *Config {
	viper.SetEnvPrefix("SONGDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.port")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.template_dir")
	viper.BindEnv("server.log_level")

	viper.BindEnv("database.driver")
	viper.BindEnv("database.path")
	viper.BindEnv("database.host")
	viper.BindEnv("database.port")
	viper.BindEnv("database.user")
	viper.BindEnv("database.password")
	viper.BindEnv("database.name")

	viper.BindEnv("auth.allow_key_bootstrap")
	viper.BindEnv("auth.default_validity_days")

	// Defaults
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.template_dir", "web/templates")
	viper.SetDefault("server.log_level", "error")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "songs.db")
	viper.SetDefault("database.port", "5432")

	viper.SetDefault("auth.allow_key_bootstrap", true)
	viper.SetDefault("auth.default_validity_days", 7)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	return &cfg
}
