package main

import (
	"os"

	"github.com/romana/rlog"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"

	"restaurant_system/custom/util"
	"restaurant_system/model"
)

func main() {
	app := &cli.App{
		Name:  "gen",
		Usage: "generate the gen DAO of every record type",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "./config/config.yaml"},
			&cli.StringFlag{Name: "out", Value: "./dal/query"},
		},
		Action: generate,
	}
	if err := app.Run(os.Args); err != nil {
		rlog.Critical(err.Error())
		os.Exit(1)
	}
}

// generate reads the model structs only; the handle is opened without a ping
// so no database has to be reachable.
func generate(c *cli.Context) error {
	serverConfig, err := new(util.ServerConfig).GetConf(c.String("config"))
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: c.String("out"),
		Mode:    gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface, // generate mode
	})

	db, err := gorm.Open(postgres.Open(serverConfig.Database.DSN()), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		return err
	}

	g.UseDB(db)
	g.ApplyBasic(model.AllTables...)
	g.Execute()
	return nil
}
