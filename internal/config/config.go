package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	pkglogger "github.com/bbapp/bulletin-backend/pkg/logger"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	CORS     CORSConfig     `yaml:"cors"`
	Board    BoardConfig    `yaml:"board"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // development, staging, production
}

// DatabaseConfig MySQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"dbname"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	AutoMigrate     bool   `yaml:"auto_migrate"`
}

// JWTConfig session token settings
type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // seconds
}

// CORSConfig comma separated list of allowed origins
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// BoardConfig listing and ranking settings
type BoardConfig struct {
	PageSize        int    `yaml:"page_size"`
	RankingLimit    int    `yaml:"ranking_limit"`
	RankingStrategy string `yaml:"ranking_strategy"` // dense, existing
}

// GetDSN returns the MySQL DSN. parseTime is required for DATETIME columns.
func (d DatabaseConfig) GetDSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	cfg.DBName = d.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	switch c.Server.Mode {
	case "", "development", "dev", "local":
		return true
	}
	return false
}

// Load reads the YAML file at path. ${VAR} references are expanded from the
// environment before parsing; missing values take defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse([]byte(os.ExpandEnv(string(raw))))
}

// Parse decodes YAML content, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 100
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}
	if c.JWT.ExpiresIn == 0 {
		c.JWT.ExpiresIn = 86400
	}
	if c.Board.PageSize == 0 {
		c.Board.PageSize = 10
	}
	if c.Board.RankingLimit == 0 {
		c.Board.RankingLimit = 10
	}
	if c.Board.RankingStrategy == "" {
		c.Board.RankingStrategy = "dense"
	}
}

// Validate checks settings that have no usable default
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	} else if !c.IsDevelopment() && len(c.JWT.Secret) < 32 {
		errs = append(errs, errors.New("jwt.secret must be at least 32 bytes outside development"))
	}
	if c.Board.PageSize < 1 {
		errs = append(errs, fmt.Errorf("board.page_size must be positive: %d", c.Board.PageSize))
	}
	if c.Board.RankingLimit < 1 {
		errs = append(errs, fmt.Errorf("board.ranking_limit must be positive: %d", c.Board.RankingLimit))
	}
	switch c.Board.RankingStrategy {
	case "dense", "existing":
	default:
		errs = append(errs, fmt.Errorf("board.ranking_strategy must be dense or existing: %q", c.Board.RankingStrategy))
	}
	return errors.Join(errs...)
}

// LogResolved prints the effective configuration with secrets masked
func LogResolved(cfg *Config) {
	pkglogger.GetLogger().Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("db_host", cfg.Database.Host).
		Int("db_port", cfg.Database.Port).
		Str("db_name", cfg.Database.DBName).
		Str("db_user", cfg.Database.User).
		Str("db_password", mask(cfg.Database.Password)).
		Str("jwt_secret", mask(cfg.JWT.Secret)).
		Str("cors", cfg.CORS.AllowOrigins).
		Int("page_size", cfg.Board.PageSize).
		Int("ranking_limit", cfg.Board.RankingLimit).
		Str("ranking_strategy", cfg.Board.RankingStrategy).
		Msg("config resolved")
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", len(secret)-2)
}
