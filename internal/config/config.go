package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/sadopc/taskxp/internal/store"
)

type Config struct {
	DBPath       string `yaml:"db_path" env:"TASKXP_DB_PATH"`
	LogLevel     string `yaml:"log_level" env:"TASKXP_LOG_LEVEL" env-default:"INFO"`
	LogFile      string `yaml:"log_file" env:"TASKXP_LOG_FILE"`
	UserName     string `yaml:"user_name" env:"TASKXP_USER_NAME" env-default:"Sami Dev"`
	UpcomingDays int    `yaml:"upcoming_days" env:"TASKXP_UPCOMING_DAYS" env-default:"7"`
	DarkMode     bool   `yaml:"dark_mode" env:"TASKXP_DARK_MODE"`
}

// Load reads the yaml file at path, falling back to the environment when
// path is empty or the file does not exist.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("read env: %w", err)
		}
		return cfg, cfg.fill()
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("read env: %w", err)
		}
	}
	return cfg, cfg.fill()
}

func (c *Config) fill() error {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return err
		}
		c.DBPath = p
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(filepath.Dir(c.DBPath), "taskxp.log")
	}
	if c.UpcomingDays <= 0 {
		c.UpcomingDays = 7
	}
	return nil
}
