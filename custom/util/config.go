package util

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/romana/rlog"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm/logger"

	"restaurant_system/dal"
)

// ENV_PREFIX prefixes every environment override, e.g. RESTAURANT_DB_HOST.
const ENV_PREFIX = "restaurant"

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ServerConfig struct {
	Port     int          `yaml:"port"`
	Database dal.DbConfig `yaml:"database" envconfig:"DB"`
	Log      LogConfig    `yaml:"log"`
	SkipSeed bool         `yaml:"skip_seed" split_words:"true"`
}

// GetConf loads .env (when present), then fileName, then RESTAURANT_* overrides.
// A missing file is not an error: defaults and the environment still apply.
func (c *ServerConfig) GetConf(fileName string) (*ServerConfig, error) {
	_ = godotenv.Load()

	yamlFile, err := os.ReadFile(fileName)
	if err != nil {
		rlog.Warnf("Read yaml file %s failed: %s", fileName, err.Error())
	} else if err = yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", fileName)
	}

	if err = envconfig.Process(ENV_PREFIX, c); err != nil {
		return nil, errors.Wrap(err, "read environment overrides")
	}
	c.applyDefaults()
	return c, nil
}

func (c *ServerConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.Database.Dialect == "" {
		c.Database.Dialect = dal.DIALECT_POSTGRES
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		if c.Database.Dialect == dal.DIALECT_MYSQL {
			c.Database.Port = 3306
		} else {
			c.Database.Port = 5432
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	c.Log.Level = strings.ToUpper(c.Log.Level)
}

// ApplyLogging hands the log section to rlog, which reads its settings from the environment.
func (c *ServerConfig) ApplyLogging() {
	os.Setenv("RLOG_LOG_LEVEL", c.Log.Level)
	if c.Log.File != "" {
		os.Setenv("RLOG_LOG_FILE", c.Log.File)
	}
	rlog.UpdateEnv()
}

// GormLogLevel prints SQL at DEBUG, only slow queries and failures otherwise.
func (c *ServerConfig) GormLogLevel() logger.LogLevel {
	if c.Log.Level == "DEBUG" {
		return logger.Info
	}
	return logger.Warn
}
