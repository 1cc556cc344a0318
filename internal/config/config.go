package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort     = 8000
	defaultEnv      = "development"
	defaultDBName   = "kimia_realestate"
	defaultUsername = "admin"
	defaultPassword = "admin123"
	defaultSecret   = "your-secret-key-change-in-production"
)

// AdminConfig is the single fixed credential pair accepted by login.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MongoConfig locates the document database. An empty URL selects the
// in-memory seeded store instead.
type MongoConfig struct {
	URL    string `yaml:"url"`
	DBName string `yaml:"db_name"`
}

// AppConfig holds runtime startup configuration, loaded from YAML and
// overridable through environment variables. It is injected into every
// component; nothing reads configuration from package globals.
type AppConfig struct {
	Port           int         `yaml:"port"`
	Env            string      `yaml:"env"` // "development" | "production"
	Mongo          MongoConfig `yaml:"mongo"`
	AllowedOrigins []string    `yaml:"allowed_origins"`
	JWTSecret      string      `yaml:"jwt_secret"`
	Admin          AdminConfig `yaml:"admin"`
}

// Load reads the YAML config at path (missing file falls back to defaults),
// then applies environment overrides: PORT, ENV, MONGO_URL, DB_NAME,
// CORS_ORIGINS, JWT_SECRET, ADMIN_USERNAME, ADMIN_PASSWORD.
func Load(configPath string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults + env only
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil, fmt.Errorf("admin credentials must not be empty")
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoConfig{
			DBName: defaultDBName,
		},
		AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		JWTSecret:      defaultSecret,
		Admin: AdminConfig{
			Username: defaultUsername,
			Password: defaultPassword,
		},
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("ENV")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGO_URL")); v != "" {
		cfg.Mongo.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_NAME")); v != "" {
		cfg.Mongo.DBName = v
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("ADMIN_USERNAME")); v != "" {
		cfg.Admin.Username = v
	}
	if v := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")); v != "" {
		cfg.Admin.Password = v
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	cfg.Mongo.URL = strings.TrimSpace(cfg.Mongo.URL)
	cfg.Mongo.DBName = strings.TrimSpace(cfg.Mongo.DBName)
	if cfg.Mongo.DBName == "" {
		cfg.Mongo.DBName = defaultDBName
	}
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultSecret
	}
	cfg.Admin.Username = strings.TrimSpace(cfg.Admin.Username)
	cfg.Admin.Password = strings.TrimSpace(cfg.Admin.Password)
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

// UseMongo reports whether a document database is configured. Without one
// the service runs on the seeded in-memory stores.
func (c *AppConfig) UseMongo() bool {
	return c.Mongo.URL != ""
}
