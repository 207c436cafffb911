package container

import (
	"context"

	log "github.com/sirupsen/logrus"

	"deepsrt/fetcher/internal/client"
	"deepsrt/fetcher/internal/config"
	"deepsrt/fetcher/internal/input"
	"deepsrt/fetcher/internal/logging"
	"deepsrt/fetcher/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Logger  *log.Logger
	Client  client.SubtitleClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}

	subtitleClient := client.NewSubtitleClient(cfg.API, cfg.Fetch.Verbose(), logger)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Client:  subtitleClient,
		Service: service.NewService(subtitleClient, cfg.Fetch.Delay*1000, logger),
	}, nil
}

// Run executes one batch: load identifiers, fetch them all, report.
// A missing or unreadable input file is the only fatal condition.
func (c *Container) Run(ctx context.Context) error {
	c.Logger.Info("SRT Fetcher starting...")
	c.Logger.Infof("Using input file: %s", c.Config.Input.File)
	c.Logger.Infof("Delay between requests: %d second(s)", c.Config.Fetch.Delay)

	ids, err := input.ReadIdentifiers(c.Config.Input.File, c.Logger)
	if err != nil {
		c.Logger.Errorf("Failed to read input: %v", err)
		return err
	}

	summary := c.Service.Run(ctx, ids)
	c.Logger.Infof("SRT Fetcher finished: %d of %d fetches succeeded", summary.Succeeded, summary.Total())
	return nil
}
