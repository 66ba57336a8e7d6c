package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userdirectory/internal/buildinfo"
	"github.com/dmitrijs2005/userdirectory/internal/client/cli"
	"github.com/dmitrijs2005/userdirectory/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// SIGTERM aborts in-flight requests; the REPL itself exits on EOF or "exit".
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to %s: %v\n", cfg.ServerEndpointAddr, err)
		os.Exit(1)
	}

	app.Run(ctx)
}
