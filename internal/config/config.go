package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Email  EmailConfig
	CORS   CORSConfig
	Log    LogConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings for learning materials.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds payment reminder delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig holds reporting defaults. DefaultSessionMinutes is the value
// AverageSessionDuration falls back to when no schedule has both timestamps.
type ReportConfig struct {
	TrendMonths           int `mapstructure:"trend_months"`
	DefaultSessionMinutes int `mapstructure:"default_session_minutes"`
	TopSubjectsLimit      int `mapstructure:"top_subjects_limit"`
}

// Load reads configuration from environment variables with the LESKITA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LESKITA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "leskita")
	v.SetDefault("db.password", "leskita_secret")
	v.SetDefault("db.name", "leskita_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "leskita")

	// S3 defaults
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "leskita-materials")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-southeast-1")
	v.SetDefault("email.from_address", "noreply@leskita.id")
	v.SetDefault("email.from_name", "LesKita")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Report defaults
	v.SetDefault("report.trend_months", 6)
	v.SetDefault("report.default_session_minutes", 90)
	v.SetDefault("report.top_subjects_limit", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "LESKITA_SERVER_PORT",
		"server.read_timeout":            "LESKITA_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "LESKITA_SERVER_WRITE_TIMEOUT",
		"server.environment":             "LESKITA_SERVER_ENVIRONMENT",
		"db.host":                        "LESKITA_DB_HOST",
		"db.port":                        "LESKITA_DB_PORT",
		"db.user":                        "LESKITA_DB_USER",
		"db.password":                    "LESKITA_DB_PASSWORD",
		"db.name":                        "LESKITA_DB_NAME",
		"db.sslmode":                     "LESKITA_DB_SSLMODE",
		"db.max_open":                    "LESKITA_DB_MAX_OPEN",
		"db.max_idle":                    "LESKITA_DB_MAX_IDLE",
		"jwt.secret":                     "LESKITA_JWT_SECRET",
		"jwt.access_expiry":              "LESKITA_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":             "LESKITA_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                     "LESKITA_JWT_ISSUER",
		"s3.region":                      "LESKITA_S3_REGION",
		"s3.bucket":                      "LESKITA_S3_BUCKET",
		"s3.endpoint":                    "LESKITA_S3_ENDPOINT",
		"s3.access_key":                  "LESKITA_S3_ACCESS_KEY",
		"s3.secret_key":                  "LESKITA_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "LESKITA_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":              "LESKITA_S3_PRESIGN_EXPIRY",
		"email.provider":                 "LESKITA_EMAIL_PROVIDER",
		"email.region":                   "LESKITA_EMAIL_REGION",
		"email.from_address":             "LESKITA_EMAIL_FROM_ADDRESS",
		"email.from_name":                "LESKITA_EMAIL_FROM_NAME",
		"cors.allowed_origins":           "LESKITA_CORS_ALLOWED_ORIGINS",
		"log.level":                      "LESKITA_LOG_LEVEL",
		"log.format":                     "LESKITA_LOG_FORMAT",
		"report.trend_months":            "LESKITA_REPORT_TREND_MONTHS",
		"report.default_session_minutes": "LESKITA_REPORT_DEFAULT_SESSION_MINUTES",
		"report.top_subjects_limit":      "LESKITA_REPORT_TOP_SUBJECTS_LIMIT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LESKITA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LESKITA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Report = ReportConfig{
		TrendMonths:           v.GetInt("report.trend_months"),
		DefaultSessionMinutes: v.GetInt("report.default_session_minutes"),
		TopSubjectsLimit:      v.GetInt("report.top_subjects_limit"),
	}

	return cfg, nil
}
