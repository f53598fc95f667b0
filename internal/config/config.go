package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/pkg/types"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Booking         BookingConfig         `toml:"booking"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// IdentityServiceConfig настройки клиента IdentityService
type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig глобальные настройки бронирования.
// Часы работы по умолчанию, которые переопределяются на уровне площадки.
type BookingConfig struct {
	DefaultOpenTime  string `toml:"default_open_time"`
	DefaultCloseTime string `toml:"default_close_time"`
	HoldMinutes      int    `toml:"hold_minutes"`
}

// OperatingHours returns the validated global default open/close window.
func (b *BookingConfig) OperatingHours() (types.TimeString, types.TimeString, error) {
	open := b.DefaultOpenTime
	if open == "" {
		open = domain.DefaultOpenTime
	}
	close := b.DefaultCloseTime
	if close == "" {
		close = domain.DefaultCloseTime
	}

	openTS, err := types.NewTimeStringFromString(open)
	if err != nil {
		return "", "", fmt.Errorf("config: invalid default_open_time: %w", err)
	}
	closeTS, err := types.NewTimeStringFromString(close)
	if err != nil {
		return "", "", fmt.Errorf("config: invalid default_close_time: %w", err)
	}
	if !closeTS.IsAfter(openTS) {
		return "", "", fmt.Errorf("config: default_close_time must be after default_open_time")
	}

	return openTS, closeTS, nil
}

// Load читает и парсит конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "simplyteams-booking"
	}
	if cfg.Booking.HoldMinutes == 0 {
		cfg.Booking.HoldMinutes = domain.DefaultHoldMinutes
	}
	if cfg.IdentityService.Timeout == 0 {
		cfg.IdentityService.Timeout = 5
	}

	return &cfg, nil
}
