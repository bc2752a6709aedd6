package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultDatabaseName = "library"

type (
	Config struct {
		HTTP
		Mongo
		Limits
	}

	HTTP struct {
		Host            string
		Port            int
		ShutdownTimeout time.Duration
		AllowedOrigins  []string
		EnableHSTS      bool
	}

	Mongo struct {
		URI            string
		Database       string
		ConnectTimeout time.Duration
		OpTimeout      time.Duration
	}

	Limits struct {
		MaxBodyBytes   int64
		RateLimitRPS   float64
		RateLimitBurst int
	}
)

// Load reads .env files (without overriding the real environment) and
// builds the configuration from environment variables.
func Load() *Config {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("enable_hsts", false)

	v.SetDefault("mongodb_uri", "mongodb://localhost:27017/"+defaultDatabaseName)
	v.SetDefault("mongodb_db", "")
	v.SetDefault("mongodb_connect_timeout", "10s")
	v.SetDefault("db_timeout", "5s")

	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("rate_limit_rps", 0)
	v.SetDefault("rate_limit_burst", 20)
	return v
}

// FromViper maps an already populated viper instance onto Config.
func FromViper(v *viper.Viper) *Config {
	uri := v.GetString("MONGODB_URI")
	dbName := v.GetString("MONGODB_DB")
	if dbName == "" {
		dbName = databaseFromURI(uri)
	}

	return &Config{
		HTTP: HTTP{
			Host:            v.GetString("HOST"),
			Port:            v.GetInt("PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			EnableHSTS:      v.GetBool("ENABLE_HSTS"),
		},
		Mongo: Mongo{
			URI:            uri,
			Database:       dbName,
			ConnectTimeout: v.GetDuration("MONGODB_CONNECT_TIMEOUT"),
			OpTimeout:      v.GetDuration("DB_TIMEOUT"),
		},
		Limits: Limits{
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Mongo.URI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.HTTP.Port))
	}
	if c.Mongo.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("MONGODB_CONNECT_TIMEOUT must be positive"))
	}
	if c.Mongo.OpTimeout <= 0 {
		errs = append(errs, errors.New("DB_TIMEOUT must be positive"))
	}
	if c.Limits.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}
	return errors.Join(errs...)
}

// databaseFromURI returns the default database encoded in the connection
// string path, e.g. "library" for mongodb://host:27017/library.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultDatabaseName
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultDatabaseName
	}
	return name
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
