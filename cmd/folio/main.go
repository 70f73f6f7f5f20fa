package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinytelemetry/folio/internal/config"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool
	var banner bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/folio/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&banner, "banner", false, "print the hero to stdout and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Folio - Portfolio Server\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if banner {
		err = printBanner(os.Stdout, cfg)
	} else {
		err = runServer(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
