package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/emurenMRz/mailpanel/internal/config"
	"github.com/emurenMRz/mailpanel/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML configuration file")
		path       = flag.String("path", "", "path to mbox files (overrides config)")
		addr       = flag.String("addr", "", "listen address (overrides config)")
		edit       = flag.Bool("edit", false, "enable endpoints that rewrite mbox files")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", *configPath).Msg("load configuration")
		}
	}
	if *path != "" {
		cfg.Mailboxes.Path = *path
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *edit {
		cfg.Server.EditMode = true
	}

	if cfg.Logging.Level != "" {
		if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			logger = logger.Level(level)
		}
	}

	if err := server.New(cfg, logger).Run(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
