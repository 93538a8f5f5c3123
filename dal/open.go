package dal

import (
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/romana/rlog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"restaurant_system/model"
)

const DIALECT_POSTGRES = "postgres"
const DIALECT_MYSQL = "mysql"

// DRIVER_PQ selects lib/pq instead of pgx below the postgres dialect.
const DRIVER_PQ = "pq"

type DbConfig struct {
	Dialect         string        `yaml:"dialect"`
	Driver          string        `yaml:"driver"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	Replicas        []string      `yaml:"replicas"`
	MaxIdleConns    int           `yaml:"max_idle_conns" split_words:"true"`
	MaxOpenConns    int           `yaml:"max_open_conns" split_words:"true"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" split_words:"true"`
}

// DSN renders the connection string of the primary for the configured dialect.
// MySQL reports matched rows rather than changed rows, as postgres does.
func (c DbConfig) DSN() string {
	if c.Dialect == DIALECT_MYSQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			c.Username, c.Password, c.Host, c.Port, c.Database)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.Username, c.Password, c.Database)
}

func (c DbConfig) dialector(dsn string) (gorm.Dialector, error) {
	switch c.Dialect {
	case "", DIALECT_POSTGRES:
		if c.Driver == DRIVER_PQ {
			return postgres.New(postgres.Config{DriverName: "postgres", DSN: dsn}), nil
		}
		return postgres.Open(dsn), nil
	case DIALECT_MYSQL:
		return mysql.Open(dsn), nil
	}
	return nil, errors.Errorf("unsupported database dialect %q", c.Dialect)
}

func (c DbConfig) replicaDialectors() ([]gorm.Dialector, error) {
	replicas := make([]gorm.Dialector, 0, len(c.Replicas))
	for i, dsn := range c.Replicas {
		replica, err := c.dialector(dsn)
		if err != nil {
			return nil, errors.Wrapf(err, "replica %d", i)
		}
		replicas = append(replicas, replica)
	}
	return replicas, nil
}

// Open connects to the primary, registers read replicas and applies the pool limits.
func Open(c DbConfig, level logger.LogLevel) (*gorm.DB, error) {
	primary, err := c.dialector(c.DSN())
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(primary, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if len(c.Replicas) > 0 {
		replicas, err := c.replicaDialectors()
		if err != nil {
			return nil, err
		}
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
		rlog.Infof("Registered %d read replicas", len(replicas))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get connection pool")
	}
	sqlDB.SetMaxIdleConns(orDefault(c.MaxIdleConns, 10))
	sqlDB.SetMaxOpenConns(orDefault(c.MaxOpenConns, 100))
	if c.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}

// Migrate creates or alters the tables of every record type.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.AllTables...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
