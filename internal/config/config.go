package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Upload   UploadConfig   `yaml:"upload"`
	Calendar CalendarConfig `yaml:"calendar"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type UploadConfig struct {
	Dir        string `yaml:"dir"`
	MaxSizeMB  int64  `yaml:"max_size_mb"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// CalendarConfig carries the fixed header values of generated feeds.
// The timezone is a hint only; event times stay naive local time.
type CalendarConfig struct {
	ProdID   string `yaml:"prod_id"`
	Timezone string `yaml:"timezone"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server:   ServerConfig{Port: 3000},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Upload:   UploadConfig{Dir: os.TempDir(), MaxSizeMB: 10, TTLMinutes: 120},
		Calendar: CalendarConfig{ProdID: "-//Rota Reader//EN", Timezone: "Europe/London"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/rota-reader/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Upload.Dir, "UPLOAD_DIR")
	envOverride(&c.Calendar.Timezone, "CALENDAR_TIMEZONE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Upload.TTLMinutes, "UPLOAD_TTL_MINUTES")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) UploadTTL() time.Duration {
	return time.Duration(c.Upload.TTLMinutes) * time.Minute
}

func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB << 20
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
