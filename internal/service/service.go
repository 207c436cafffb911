package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"deepsrt/fetcher/internal/client"
	"deepsrt/fetcher/internal/domain"
)

// snippetLimit bounds the response body excerpt in per-item log lines.
const snippetLimit = 150

// Service runs one batch of subtitle fetches: strictly sequential, one
// request in flight at a time, paced by the configured delay.
type Service struct {
	client client.SubtitleClient
	rl     ratelimit.Limiter
	logger *log.Logger
}

// NewService builds a batch fetcher. delayMillis is the pause between
// consecutive requests; zero disables pacing entirely.
func NewService(subtitleClient client.SubtitleClient, delayMillis int, logger *log.Logger) *Service {
	rl := ratelimit.NewUnlimited()
	if delayMillis > 0 {
		rl = ratelimit.New(1,
			ratelimit.Per(time.Duration(delayMillis)*time.Millisecond),
			ratelimit.WithoutSlack)
	}

	return &Service{
		client: subtitleClient,
		rl:     rl,
		logger: logger,
	}
}

// Run fetches subtitle data for every identifier in input order. Failures
// are logged and tallied; they never abort the batch.
func (s *Service) Run(ctx context.Context, ids []domain.Identifier) domain.Summary {
	summary := domain.Summary{}

	if len(ids) == 0 {
		s.logger.Warn("No YouTube IDs to process")
		return summary
	}

	total := len(ids)
	s.logger.Infof("Starting to process %d YouTube IDs...", total)

	for i, id := range ids {
		// The first take returns immediately; every following one waits out
		// the configured delay, so a batch of n pauses exactly n-1 times.
		s.rl.Take()

		s.logger.Infof("Processing ID %d/%d: %s", i+1, total, id)
		result := s.client.Fetch(ctx, id)

		if result.OK {
			summary.Succeeded++
			s.logger.Infof("Fetched data for YouTube ID %s. Response: %s",
				id, domain.Snippet(result.Body, snippetLimit))
			continue
		}

		summary.Failed++
		switch result.Failure {
		case domain.FailureKindHTTP:
			s.logger.Warnf("Failed to fetch data for YouTube ID %s: %s. Response: %s",
				id, result.Reason, domain.Snippet(result.Body, snippetLimit))
		default:
			s.logger.Warnf("Failed to fetch data for YouTube ID %s: %s (%s)",
				id, result.Reason, result.Failure)
		}
	}

	s.logger.Infof("All YouTube IDs processed: %d succeeded, %d failed", summary.Succeeded, summary.Failed)
	return summary
}
