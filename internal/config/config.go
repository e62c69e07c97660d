// Package config предоставляет структуры и функцию для загрузки конфига сервиса.
// Значения читаются из YAML-файла (CONFIG_PATH) и переменных окружения,
// переменные окружения имеют приоритет над файлом.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Registry   `yaml:"registry"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":80"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Registry настройки хранилища активных пользователей.
// Serials — список допустимых серийных номеров.
// SweepInterval — период фоновой очистки просроченных записей, 0 отключает очистку.
type Registry struct {
	Serials       []string      `yaml:"serials" env:"VALID_SERIALS" env-separator:"," env-default:"ABC123,XYZ999,TESTSERIAL"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SWEEP_INTERVAL" env-default:"0s"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
// Если CONFIG_PATH не задан, конфиг собирается только из окружения.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load читает конфиг из файла configPath (если путь непустой) и окружения.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: cannot read env: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file: %s - does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Registry:\n"+
			"  Serials: %d configured\n"+
			"  SweepInterval: %s\n",
		c.Env,
		c.Address,
		c.Timeout,
		c.IdleTimeout,
		len(c.Serials),
		c.SweepInterval,
	)
}

// SerialList возвращает непустые серийные номера без пробелов по краям.
func (r Registry) SerialList() []string {
	serials := make([]string, 0, len(r.Serials))
	for _, s := range r.Serials {
		if s = strings.TrimSpace(s); s != "" {
			serials = append(serials, s)
		}
	}
	return serials
}
