package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RabbitMQ  RabbitMQConfig
	Tracing   TracingConfig
	Scheduler SchedulerConfig
	Lock      LockConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	ServiceName string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// RabbitMQConfig is optional; an empty URL disables event publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// TracingConfig is optional; an empty endpoint disables trace export.
type TracingConfig struct {
	OTLPEndpoint string
}

type SchedulerConfig struct {
	Enabled     bool
	Cron        string
	HorizonDays int
	Concurrency int
}

type LockConfig struct {
	TTL  time.Duration
	Wait time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVICE_NAME", "availability-service")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("RABBITMQ_EXCHANGE", "availability.exchange")
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("SCHEDULER_CRON", "0 2 * * *")
	viper.SetDefault("SCHEDULER_HORIZON_DAYS", 56)
	viper.SetDefault("SCHEDULER_CONCURRENCY", 4)

	// The .env file is optional in containers where everything comes from the environment.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	lockTTL, err := time.ParseDuration(viper.GetString("LOCK_TTL"))
	if err != nil {
		lockTTL = 30 * time.Second
	}

	lockWait, err := time.ParseDuration(viper.GetString("LOCK_WAIT"))
	if err != nil {
		lockWait = 5 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			LogLevel:    viper.GetString("LOG_LEVEL"),
			ServiceName: viper.GetString("SERVICE_NAME"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			TimeZone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		RabbitMQ: RabbitMQConfig{
			URL:      viper.GetString("RABBITMQ_URL"),
			Exchange: viper.GetString("RABBITMQ_EXCHANGE"),
		},
		Tracing: TracingConfig{
			OTLPEndpoint: viper.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		Scheduler: SchedulerConfig{
			Enabled:     viper.GetBool("SCHEDULER_ENABLED"),
			Cron:        viper.GetString("SCHEDULER_CRON"),
			HorizonDays: viper.GetInt("SCHEDULER_HORIZON_DAYS"),
			Concurrency: viper.GetInt("SCHEDULER_CONCURRENCY"),
		},
		Lock: LockConfig{
			TTL:  lockTTL,
			Wait: lockWait,
		},
	}

	return config, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
