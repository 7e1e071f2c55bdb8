package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Postgres     PostgresConfig     `mapstructure:"postgres"`
	SessionRedis SessionRedisConfig `mapstructure:"sessionredis"`
	RoomRedis    RoomRedisConfig    `mapstructure:"roomredis"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	Judge        JudgeConfig        `mapstructure:"judge"`
	Game         GameConfig         `mapstructure:"game"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Host        string `mapstructure:"host"`
	Description string `mapstructure:"description"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type SessionRedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RoomRedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
}

// JudgeConfig, otomatik cevap kontrolü için kullanılan dış servisin ayarları.
type JudgeConfig struct {
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // saniye
}

// GameConfig, oyun varsayılanlarını tutar.
type GameConfig struct {
	DefaultTimeLimit int    `mapstructure:"default_time_limit"` // saniye
	DefaultRounds    int    `mapstructure:"default_rounds"`
	ChainLetterRule  string `mapstructure:"chain_letter_rule"` // first, middle, last
}

func Read() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")
	viper.AddConfigPath("/")

	// Defaults
	viper.SetDefault("app.name", "word-game-service")
	viper.SetDefault("server.port", "8083")
	viper.SetDefault("server.host", "0.0.0.0")

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.user", "myuser")
	viper.SetDefault("postgres.password", "mypassword")
	viper.SetDefault("postgres.db", "wordgamedb")

	viper.SetDefault("sessionredis.host", "localhost")
	viper.SetDefault("sessionredis.port", "6379")
	viper.SetDefault("sessionredis.db", 0)

	viper.SetDefault("roomredis.host", "localhost")
	viper.SetDefault("roomredis.port", "6379")
	viper.SetDefault("roomredis.db", 1)

	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})

	viper.SetDefault("judge.url", "http://localhost:11434/api/chat")
	viper.SetDefault("judge.model", "llama3.2:1b")
	viper.SetDefault("judge.timeout", 20)

	viper.SetDefault("game.default_time_limit", 60)
	viper.SetDefault("game.default_rounds", 1)
	viper.SetDefault("game.chain_letter_rule", "last")

	// ENV overrides with prefix WORDGAME_ and dot-to-underscore replacement
	viper.SetEnvPrefix("WORDGAME")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}

	return config
}
