package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeConsole = "console"
	ModeServer  = "server"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string  `yaml:"mode" env:"MODE" env-default:"console"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Agent      Agent   `yaml:"agent"`
	Console    Console `yaml:"console"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Agent configures the search-driven player.
type Agent struct {
	Mark     string `yaml:"mark" env:"AGENT_MARK" env-default:"X"`
	TieBreak string `yaml:"tie-break" env:"AGENT_TIE_BREAK" env-default:"legacy"`
	Decisive string `yaml:"decisive" env:"AGENT_DECISIVE" env-default:"legacy"`
}

type Console struct {
	Color      bool `yaml:"color" env:"CONSOLE_COLOR" env-default:"true"`
	AgentFirst bool `yaml:"agent-first" env:"CONSOLE_AGENT_FIRST" env-default:"false"`
}

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
