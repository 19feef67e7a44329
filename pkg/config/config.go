package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Assembly  AssemblyConfig
	Sentiment SentimentConfig
	Auth      AuthConfig
	Workers   WorkersConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	PublicBaseURL   string   `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"kina"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns int    `envconfig:"DB_MIN_CONNS" default:"5"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// CacheTTL bounds how long deterministic analysis results are reused.
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"24h"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string        `envconfig:"JWT_ACCESS_SECRET" default:"your-access-secret-change-in-production"`
	RefreshSecret string        `envconfig:"JWT_REFRESH_SECRET" default:"your-refresh-secret-change-in-production"`
	AccessExpiry  time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"15m"`
	RefreshExpiry time.Duration `envconfig:"JWT_REFRESH_EXPIRY" default:"168h"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"kina-recordings"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// AssemblyConfig holds AssemblyAI configuration
type AssemblyConfig struct {
	APIKey        string `envconfig:"ASSEMBLYAI_API_KEY" default:""`
	WebhookSecret string `envconfig:"ASSEMBLYAI_WEBHOOK_SECRET" default:""`
}

// SentimentConfig holds the sentiment inference configuration
type SentimentConfig struct {
	Provider string `envconfig:"SENTIMENT_PROVIDER" default:"lexicon"` // "lexicon" or "huggingface"
	APIURL   string `envconfig:"SENTIMENT_API_URL" default:"https://api-inference.huggingface.co"`
	APIKey   string `envconfig:"SENTIMENT_API_KEY" default:""`
	Model    string `envconfig:"SENTIMENT_MODEL" default:"distilbert-base-uncased-finetuned-sst-2-english"`
}

// AuthConfig holds API client credentials
type AuthConfig struct {
	// APIKeys maps client IDs to API keys, e.g. "clinic-a:key1,clinic-b:key2".
	APIKeys map[string]string `envconfig:"API_KEYS" default:""`
}

// WorkersConfig holds background worker configuration
type WorkersConfig struct {
	PoolSize          int           `envconfig:"WORKER_POOL_SIZE" default:"3"`
	PollInterval      time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"10s"`
	StuckJobThreshold time.Duration `envconfig:"WORKER_STUCK_THRESHOLD" default:"10m"`
	MaxConcurrent     int           `envconfig:"WORKER_MAX_CONCURRENT" default:"5"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Environment == "production" {
		if c.Assembly.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required in production")
		}
		if len(c.Auth.APIKeys) == 0 {
			return fmt.Errorf("API_KEYS is required in production")
		}
	}
	if c.Workers.PoolSize < 1 {
		return fmt.Errorf("WORKER_POOL_SIZE must be at least 1")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
