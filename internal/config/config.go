package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	SpaceData SpaceDataConfig `mapstructure:"space_data"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Game      GameConfig      `mapstructure:"game"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flags set from command-line arguments, not from the config file.
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SpaceDataConfig points at the upstream space-agency API (NASA open APIs in the
// reference deployment). TimeoutSeconds bounds every outbound call.
type SpaceDataConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ChatConfig points at an OpenAI-compatible chat completion endpoint for the
// space tutor. Leaving APIKey empty switches the tutor to canned answers.
type ChatConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// GameConfig carries the progression and grading constants. LevelThresholds is
// the cumulative-XP cutoff table: entry k is the XP required to hold level k+1,
// so it must start at 0 and be strictly increasing.
type GameConfig struct {
	LevelThresholds    []int `mapstructure:"level_thresholds"`
	QuizPoints         int   `mapstructure:"quiz_points"`
	PhotoMissionPoints int   `mapstructure:"photo_mission_points"`
	NeoMissionPoints   int   `mapstructure:"neo_mission_points"`
	QuizBankDraw       int   `mapstructure:"quiz_bank_draw"`
	AttemptTTLMinutes  int   `mapstructure:"attempt_ttl_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SPACE_ACADEMY")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Space agency API
	viper.BindEnv("space_data.base_url", "SPACE_DATA_BASE_URL")
	viper.BindEnv("space_data.api_key", "SPACE_DATA_API_KEY")

	// Chat tutor
	viper.BindEnv("chat.base_url", "CHAT_BASE_URL")
	viper.BindEnv("chat.api_key", "CHAT_API_KEY")
	viper.BindEnv("chat.model", "CHAT_MODEL")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	applyGameDefaults(&cfg.Game)
	if err := validateThresholds(cfg.Game.LevelThresholds); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

func applyGameDefaults(g *GameConfig) {
	if len(g.LevelThresholds) == 0 {
		g.LevelThresholds = []int{0, 100, 250, 500, 1000, 2000, 3500, 5000}
	}
	if g.QuizPoints <= 0 {
		g.QuizPoints = 10
	}
	if g.PhotoMissionPoints <= 0 {
		g.PhotoMissionPoints = 15
	}
	if g.NeoMissionPoints <= 0 {
		g.NeoMissionPoints = 20
	}
	if g.QuizBankDraw <= 0 {
		g.QuizBankDraw = 2
	}
	if g.AttemptTTLMinutes <= 0 {
		g.AttemptTTLMinutes = 30
	}
}

func validateThresholds(thresholds []int) error {
	if len(thresholds) == 0 {
		return fmt.Errorf("game.level_thresholds must not be empty")
	}
	if thresholds[0] != 0 {
		return fmt.Errorf("game.level_thresholds must start at 0, got %d", thresholds[0])
	}
	if !sort.IntsAreSorted(thresholds) {
		return fmt.Errorf("game.level_thresholds must be increasing")
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] == thresholds[i-1] {
			return fmt.Errorf("game.level_thresholds must be strictly increasing, duplicate %d", thresholds[i])
		}
	}
	return nil
}
