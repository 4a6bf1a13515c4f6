package main

import (
	"fmt"
	"log"
	"os"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/server"
	"photo-portfolio/internal/version"

	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath  = pflag.StringP("config", "c", "config.yaml", "Path to the YAML configuration file")
		showVersion = pflag.BoolP("version", "v", false, "Print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.Print())
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
