package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hastrology/hastrology/pkg/app"
	"github.com/hastrology/hastrology/pkg/app/api"
	"github.com/hastrology/hastrology/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional, environment variables always apply)")
	flag.Parse()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "API server exited: %v\n", err)
		os.Exit(1)
	}
}
