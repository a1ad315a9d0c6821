package connect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries connection settings for the stream connectors. Durations are
// expressed in milliseconds so they read naturally in yaml.
type Config struct {
	Kafka    KafkaConfig    `yaml:"kafka"`
	Socket   SocketConfig   `yaml:"socket"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type KafkaConfig struct {
	Brokers        []string `yaml:"brokers"`
	Topic          string   `yaml:"topic"`
	Group          string   `yaml:"group"`
	MinBytes       int      `yaml:"min_bytes"`
	MaxBytes       int      `yaml:"max_bytes"`
	ReadAttempts   uint     `yaml:"read_attempts"`
	WriteAttempts  uint     `yaml:"write_attempts"`
	WriteTimeoutMS int      `yaml:"write_timeout_ms"`
}

type SocketConfig struct {
	URL                string `yaml:"url"`
	HandshakeTimeoutMS int    `yaml:"handshake_timeout_ms"`
	DialAttempts       uint   `yaml:"dial_attempts"`
	DialDelayMS        int    `yaml:"dial_delay_ms"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// Load reads the config file at path over the top of the defaults. A missing
// file returns the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Defaults returns the connector settings used when no config file overrides
// them.
func Defaults() Config {
	return Config{
		Kafka: KafkaConfig{
			Brokers:        []string{"localhost:9092"},
			MinBytes:       10e3,
			MaxBytes:       10e6,
			ReadAttempts:   5,
			WriteAttempts:  5,
			WriteTimeoutMS: 10000,
		},
		Socket: SocketConfig{
			HandshakeTimeoutMS: 10000,
			DialAttempts:       5,
			DialDelayMS:        500,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Postgres: PostgresConfig{
			DSN: "postgres://localhost:5432/coracle",
		},
	}
}
