package main

import (
	"context"
	"log"
	"os"

	"github.com/taskmanhq/taskman-cli/internal/buildinfo"
	"github.com/taskmanhq/taskman-cli/internal/client/cli"
	"github.com/taskmanhq/taskman-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
