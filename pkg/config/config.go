package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "KENANGAN"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "KENANGAN_DB_DSN"
	EnvDBHost = "KENANGAN_DB_HOST"
	EnvDBUser = "KENANGAN_DB_USER"
	EnvDBName = "KENANGAN_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Directory    DirectoryConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KENANGAN_APP_ENV" required:"true"`
	Port         string `envconfig:"KENANGAN_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"KENANGAN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KENANGAN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KENANGAN_DB_DSN"`
	Driver string `envconfig:"KENANGAN_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"KENANGAN_DB_HOST"`
	LegacyPort     int    `envconfig:"KENANGAN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"KENANGAN_DB_USER"`
	LegacyPassword string `envconfig:"KENANGAN_DB_PASSWORD"`
	LegacyName     string `envconfig:"KENANGAN_DB_NAME"`
	LegacySSLMode  string `envconfig:"KENANGAN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KENANGAN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KENANGAN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KENANGAN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KENANGAN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KENANGAN_REDIS_URL"`
	Address      string        `envconfig:"KENANGAN_REDIS_ADDR"`
	Password     string        `envconfig:"KENANGAN_REDIS_PASSWORD"`
	DB           int           `envconfig:"KENANGAN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KENANGAN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KENANGAN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KENANGAN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KENANGAN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KENANGAN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// DirectoryConfig points at the user-directory service used to validate
// buyers and receivers during order-group creation.
type DirectoryConfig struct {
	BaseURL string        `envconfig:"KENANGAN_DIRECTORY_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"KENANGAN_DIRECTORY_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KENANGAN_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
