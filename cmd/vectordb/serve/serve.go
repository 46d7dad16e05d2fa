// Package servecmder provides the serve command that runs the HTTP API.
package servecmder

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stakeai/vectordb/api"
	"github.com/stakeai/vectordb/pkg/config"
	"github.com/stakeai/vectordb/pkg/ingest"
	"github.com/stakeai/vectordb/pkg/logger"
	"github.com/stakeai/vectordb/pkg/repo"
	"github.com/stakeai/vectordb/pkg/search"
)

type ServeCommander struct {
	listen    string
	configDir string
	debug     bool
	logger    *zap.Logger
}

const serveLongDesc string = `Run the vectordb API server.

Configuration is resolved from flags, VECTORDB_-prefixed environment
variables and an optional config.toml, in that order of precedence.`

const serveShortDesc string = "Run the vectordb API server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run(cmd.Flags().Changed("listen"))
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", ":8080", "Address for the API server to listen on")
	cmd.Flags().StringVarP(&cmder.configDir, "config-dir", "c", "", "Directory containing config.toml")

	return cmd
}

func (c *ServeCommander) run(listenFlagSet bool) error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	// Flags win over env and file values.
	if listenFlagSet {
		cfg.API.Listen = c.listen
	}

	repository := repo.New(c.logger)
	engine := search.NewEngine(repository, c.logger)

	pool, err := ingest.NewPool(&ingest.Config{
		Repo:       repository,
		NumWorkers: cfg.Ingest.Workers,
		QueueSize:  cfg.Ingest.QueueSize,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating ingest pool: %w", err)
	}

	server := api.NewServer(api.Config{
		ListenAddr:  cfg.API.Listen,
		DefaultTopK: cfg.Search.DefaultTopK,
	}, repository, engine, pool, c.logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		pool.Close()
		return err
	case sig := <-sigCh:
		c.logger.Info("shutting down", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			c.logger.Warn("API server shutdown", zap.Error(err))
		}
		// Drain queued ingest jobs after the server stops accepting new ones.
		pool.Close()
		return nil
	}
}
