package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
	Tracking TrackingConfig `yaml:"tracking"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
	GinMode string `yaml:"gin_mode"`
}

// StorageConfig selects the booking storage backend. "postgres" is the
// production driver; "file" and "memory" run the key-value backend with
// seeded demo data, matching the mocked-backend demo mode of the app.
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Dir         string `yaml:"dir"`
	BookingsKey string `yaml:"bookings_key"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers                  []string `yaml:"brokers"`
	BookingTopic             string   `yaml:"booking_topic"`
	NotificationsTopic       string   `yaml:"notifications_topic"`
	GroupID                  string   `yaml:"group_id"`
	HeartbeatIntervalSeconds int      `yaml:"heartbeat_interval_seconds"`
	SessionTimeoutSeconds    int      `yaml:"session_timeout_seconds"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type BookingConfig struct {
	BaseFareCents      int64  `yaml:"base_fare_cents"`
	PackingCents       int64  `yaml:"packing_cents"`
	StorageCents       int64  `yaml:"storage_cents"`
	InsuranceCents     int64  `yaml:"insurance_cents"`
	PaymentMethod      string `yaml:"payment_method"`
	DateLockTTLSeconds int    `yaml:"date_lock_ttl_seconds"`
	DraftTTLMinutes    int    `yaml:"draft_ttl_minutes"`
	MoversCacheTTL     int    `yaml:"movers_cache_ttl_seconds"`
}

type TrackingConfig struct {
	PositionTTLMinutes  int `yaml:"position_ttl_minutes"`
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

type WorkerConfig struct {
	SweepSeconds int `yaml:"sweep_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
