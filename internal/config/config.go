package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (s Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Model struct {
	Provider       string `mapstructure:"provider"`
	APIKey         string `mapstructure:"apikey"`
	Name           string `mapstructure:"name"`
	TimeoutSeconds int    `mapstructure:"timeoutseconds"`
}

func (m Model) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

type Config struct {
	Server Server `mapstructure:"server"`
	Model  Model  `mapstructure:"model"`
}

// LoadConfig reads configuration from the environment, with an optional .env
// file loaded first. Keys follow SECTION_FIELD naming, e.g. SERVER_PORT,
// MODEL_PROVIDER, MODEL_APIKEY, MODEL_NAME, MODEL_TIMEOUTSECONDS.
func LoadConfig() (*Config, error) {
	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("model.provider", "gemini")
	v.SetDefault("model.name", "")
	v.SetDefault("model.timeoutseconds", 45)

	// AutomaticEnv alone does not surface env vars through Unmarshal, so
	// each key is bound explicitly.
	for _, key := range []string{
		"server.host", "server.port",
		"model.provider", "model.apikey", "model.name", "model.timeoutseconds",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
