package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "PLANSMAISONS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	SMTP          SMTPConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"PLANSMAISONS_APP_ENV" required:"true"`
	Port         string `envconfig:"PLANSMAISONS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PLANSMAISONS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PLANSMAISONS_LOG_WARN_STACK" default:"false"`
	// VerifyRedirectURL is embedded in verification emails so the client
	// knows where to send the user after code entry.
	VerifyRedirectURL string `envconfig:"PLANSMAISONS_VERIFY_REDIRECT_URL" default:"http://localhost:3000/verify"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PLANSMAISONS_DB_DSN"`
	Driver string `envconfig:"PLANSMAISONS_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"PLANSMAISONS_DB_HOST"`
	Port     int    `envconfig:"PLANSMAISONS_DB_PORT" default:"5432"`
	User     string `envconfig:"PLANSMAISONS_DB_USER"`
	Password string `envconfig:"PLANSMAISONS_DB_PASSWORD"`
	Name     string `envconfig:"PLANSMAISONS_DB_NAME"`
	SSLMode  string `envconfig:"PLANSMAISONS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PLANSMAISONS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PLANSMAISONS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PLANSMAISONS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PLANSMAISONS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a DSN from discrete host settings when one was not
// provided directly.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either PLANSMAISONS_DB_DSN or host/user/name settings are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"PLANSMAISONS_REDIS_URL"`
	Address      string        `envconfig:"PLANSMAISONS_REDIS_ADDR"`
	Password     string        `envconfig:"PLANSMAISONS_REDIS_PASSWORD"`
	DB           int           `envconfig:"PLANSMAISONS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PLANSMAISONS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PLANSMAISONS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PLANSMAISONS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PLANSMAISONS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PLANSMAISONS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"PLANSMAISONS_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"PLANSMAISONS_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"PLANSMAISONS_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"PLANSMAISONS_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
	// SignupTokenTTLMinutes bounds the window between sign-up and code entry.
	SignupTokenTTLMinutes int `envconfig:"PLANSMAISONS_SIGNUP_TOKEN_TTL_MINUTES" default:"60"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

// SignupTokenTTL returns how long a sign-up session stays verifiable.
func (j JWTConfig) SignupTokenTTL() time.Duration {
	if j.SignupTokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.SignupTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PLANSMAISONS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PLANSMAISONS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PLANSMAISONS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PLANSMAISONS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PLANSMAISONS_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"PLANSMAISONS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"PLANSMAISONS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"PLANSMAISONS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"PLANSMAISONS_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"PLANSMAISONS_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"PLANSMAISONS_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"10"`
}

type SMTPConfig struct {
	Host     string `envconfig:"PLANSMAISONS_SMTP_HOST"`
	Port     int    `envconfig:"PLANSMAISONS_SMTP_PORT" default:"587"`
	Username string `envconfig:"PLANSMAISONS_SMTP_USERNAME"`
	Password string `envconfig:"PLANSMAISONS_SMTP_PASSWORD"`
	From     string `envconfig:"PLANSMAISONS_SMTP_FROM"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PLANSMAISONS_FEATURE_AUTO_MIGRATE" default:"false"`
}
