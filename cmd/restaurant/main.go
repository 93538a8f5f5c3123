package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/romana/rlog"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"restaurant_system/custom/router"
	"restaurant_system/custom/util"
	"restaurant_system/dal"
)

func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "./config/config.yaml",
		Usage:   "path to the YAML configuration file",
	}
	app := &cli.App{
		Name:   "restaurant",
		Usage:  "restaurant order management API",
		Flags:  []cli.Flag{configFlag},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate, seed and serve the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "migrate the schema and seed the reference catalog, then exit",
				Action: migrate,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		rlog.Critical(err.Error())
		os.Exit(1)
	}
}

// prepare loads the configuration, connects and brings the schema up to date.
func prepare(c *cli.Context) (*util.ServerConfig, *gorm.DB, error) {
	serverConfig, err := (&util.ServerConfig{}).GetConf(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	serverConfig.ApplyLogging()

	db, err := dal.Open(serverConfig.Database, serverConfig.GormLogLevel())
	if err != nil {
		return nil, nil, err
	}
	if err = dal.Migrate(db); err != nil {
		return nil, nil, err
	}
	if !serverConfig.SkipSeed {
		if err = dal.Seed(db); err != nil {
			return nil, nil, errors.Wrap(err, "failed to seed database")
		}
	}
	return serverConfig, db, nil
}

func migrate(c *cli.Context) error {
	_, db, err := prepare(c)
	if err != nil {
		return err
	}
	rlog.Info("Migration complete")
	return closeDB(db)
}

func serve(c *cli.Context) error {
	serverConfig, db, err := prepare(c)
	if err != nil {
		return err
	}
	dal.SetDefault(db)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", serverConfig.Port),
		Handler:      router.NewRouter(dal.Q, time.Now),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	serveErr := make(chan error, 1)
	go func() {
		rlog.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err = <-serveErr:
		return errors.Wrap(err, "http server failed")
	case sig := <-quit:
		rlog.Infof("Got %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	return closeDB(db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		rlog.Error("Get connection pool failed: " + err.Error())
		return errors.Wrap(err, "failed to get connection pool")
	}
	if err = sqlDB.Close(); err != nil {
		rlog.Error("Close database failed: " + err.Error())
		return errors.Wrap(err, "failed to close database")
	}
	return nil
}
