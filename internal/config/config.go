package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig не удалось прочитать или разобрать файл конфигурации
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Redis      RedisConfig      `toml:"redis"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	Telegram   TelegramConfig   `toml:"telegram"`
	FreedomPay FreedomPayConfig `toml:"freedompay"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig параметры движка расписания
type SchedulingConfig struct {
	Timezone               string `toml:"timezone"`
	PreBufferMinutes       int    `toml:"pre_buffer_minutes"`
	PostBufferMinutes      int    `toml:"post_buffer_minutes"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	BookingNoticeMinutes   int    `toml:"booking_notice_minutes"`
}

// Location часовой пояс салона
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	Requests      int    `toml:"requests"`
	WindowSeconds int    `toml:"window_seconds"`
	Prefix        string `toml:"prefix"`
	FailOpen      bool   `toml:"fail_open"`
}

type TelegramConfig struct {
	Enabled        bool    `toml:"enabled"`
	BotToken       string  `toml:"bot_token"`
	ChatIDs        []int64 `toml:"chat_ids"`
	MessagesPerSec float64 `toml:"messages_per_sec"`
}

type FreedomPayConfig struct {
	Enabled     bool   `toml:"enabled"`
	URL         string `toml:"url"`
	MerchantID  string `toml:"merchant_id"`
	SecretKey   string `toml:"secret_key"`
	Currency    string `toml:"currency"`
	TestingMode bool   `toml:"testing_mode"`
	ResultURL   string `toml:"result_url"`
	SuccessURL  string `toml:"success_url"`
	FailureURL  string `toml:"failure_url"`
	Timeout     int    `toml:"timeout"`
}

// Load читает конфигурацию из TOML файла.
// Секреты можно переопределить переменными окружения или файлом .env
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking-service",
		},
		Scheduling: SchedulingConfig{
			Timezone:               "Asia/Bishkek",
			PreBufferMinutes:       30,
			PostBufferMinutes:      10,
			SlotGranularityMinutes: 30,
			BookingNoticeMinutes:   30,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		RateLimit: RateLimitConfig{
			Requests:      60,
			WindowSeconds: 60,
			Prefix:        "salon:rl",
			FailOpen:      true,
		},
		Telegram:   TelegramConfig{MessagesPerSec: 1},
		FreedomPay: FreedomPayConfig{Currency: "KGS", Timeout: 10},
	}
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
	if v, ok := os.LookupEnv("TELEGRAM_BOT_TOKEN"); ok {
		cfg.Telegram.BotToken = v
	}
	if v, ok := os.LookupEnv("FREEDOMPAY_SECRET_KEY"); ok {
		cfg.FreedomPay.SecretKey = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if _, err := c.Scheduling.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("scheduling.timezone: %v", err))
	}
	if c.Scheduling.PreBufferMinutes < 0 || c.Scheduling.PostBufferMinutes < 0 {
		problems = append(problems, "scheduling buffers must not be negative")
	}
	if c.Scheduling.SlotGranularityMinutes <= 0 {
		problems = append(problems, "scheduling.slot_granularity_minutes must be positive")
	}
	if c.Scheduling.BookingNoticeMinutes < 0 {
		problems = append(problems, "scheduling.booking_notice_minutes must not be negative")
	}
	if c.Telegram.Enabled && c.Telegram.BotToken == "" {
		problems = append(problems, "telegram.bot_token is required when telegram is enabled")
	}
	if c.FreedomPay.Enabled && (c.FreedomPay.MerchantID == "" || c.FreedomPay.SecretKey == "" || c.FreedomPay.URL == "") {
		problems = append(problems, "freedompay.url, merchant_id and secret_key are required when freedompay is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
