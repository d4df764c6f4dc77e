package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort        int           `mapstructure:"APP_PORT"`
	DatabasePath   string        `mapstructure:"DATABASE_PATH"`
	DBMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenTTL       time.Duration `mapstructure:"TOKEN_TTL"`
	BcryptCost     int           `mapstructure:"BCRYPT_COST"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	AuthRateLimit  int           `mapstructure:"AUTH_RATE_LIMIT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`

	// ConfigFile is the .env file that was merged, empty when none was found.
	ConfigFile string `mapstructure:"-"`
}

// ErrMissingSecret is returned when no JWT_SECRET was configured.
var ErrMissingSecret = errors.New("config: JWT_SECRET must be set")

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("DATABASE_PATH", "/data/chat.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "168h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("AUTH_RATE_LIMIT", 10)
	v.SetDefault("LOG_LEVEL", "INFO")

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 1
	}

	return &cfg, nil
}
