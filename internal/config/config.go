package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// History backends selectable through HISTORY_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	AppPort        int           `mapstructure:"APP_PORT"`
	DatabasePath   string        `mapstructure:"DATABASE_PATH"`
	HistoryBackend string        `mapstructure:"HISTORY_BACKEND"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPrefix    string        `mapstructure:"REDIS_PREFIX"`
	WeatherAPIURL  string        `mapstructure:"WEATHER_API_URL"`
	WeatherAPIKey  string        `mapstructure:"WEATHER_API_KEY"`
	WeatherTimeout time.Duration `mapstructure:"WEATHER_TIMEOUT"`
	PredictURL     string        `mapstructure:"PREDICT_URL"`
	PredictTimeout time.Duration `mapstructure:"PREDICT_TIMEOUT"`
	ChatDelay      time.Duration `mapstructure:"CHAT_DELAY"`
	AnalysisDelay  time.Duration `mapstructure:"ANALYSIS_DELAY"`
	ReportDelay    time.Duration `mapstructure:"REPORT_DELAY"`
	PendingTimeout time.Duration `mapstructure:"PENDING_TIMEOUT"`
	CameraCommand  string        `mapstructure:"CAMERA_COMMAND"`
	DefaultCity    string        `mapstructure:"DEFAULT_CITY"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", 3000)
	v.SetDefault("DATABASE_PATH", "/data/agribrain.db")
	v.SetDefault("HISTORY_BACKEND", BackendSQLite)
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PREFIX", "agribrain:")
	v.SetDefault("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("WEATHER_API_KEY", "")
	v.SetDefault("WEATHER_TIMEOUT", 10*time.Second)
	v.SetDefault("PREDICT_URL", "http://localhost:5000")
	v.SetDefault("PREDICT_TIMEOUT", 10*time.Second)
	v.SetDefault("CHAT_DELAY", time.Second)
	v.SetDefault("ANALYSIS_DELAY", 2*time.Second)
	v.SetDefault("REPORT_DELAY", 1500*time.Millisecond)
	v.SetDefault("PENDING_TIMEOUT", 5*time.Second)
	v.SetDefault("CAMERA_COMMAND", "")
	v.SetDefault("DEFAULT_CITY", "London")
	v.SetDefault("LOG_LEVEL", "INFO")
}

func LoadConfig() (*Config, error) {
	return load(viper.New(), ".", "./backend")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	lastConfigFile = v.ConfigFileUsed()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigFileUsed reports the .env file picked up by LoadConfig, if any.
func ConfigFileUsed() string {
	return lastConfigFile
}

var lastConfigFile string
