package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Game struct {
	StartMoney     int           `yaml:"start-money" env-default:"1500"`
	PassStartBonus int           `yaml:"pass-start-bonus" env-default:"200"`
	BailFee        int           `yaml:"bail-fee" env-default:"50"`
	BotReserve     int           `yaml:"bot-reserve" env-default:"100"`
	CardDelay      time.Duration `yaml:"card-delay" env-default:"3s"`
	BotDelay       time.Duration `yaml:"bot-delay" env-default:"800ms"`
}

// MustLoad - load all configurations from the config file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
