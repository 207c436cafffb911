package client

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"deepsrt/fetcher/internal/config"
	"deepsrt/fetcher/internal/domain"
)

// dumpBodyLimit bounds response bodies in verbose DEBUG dumps.
const dumpBodyLimit = 1000

type SubtitleClient interface {
	// Fetch performs exactly one network attempt for the identifier. Every
	// fault is absorbed into the FetchResult; nothing propagates as an error.
	Fetch(ctx context.Context, id domain.Identifier) domain.FetchResult
}

type deepSRTClient struct {
	config     config.APIConfig
	httpClient *resty.Client
	logger     *log.Logger
	verbose    bool
}

func NewSubtitleClient(cfg config.APIConfig, verbose bool, logger *log.Logger) SubtitleClient {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Content-Type", "application/json")

	return &deepSRTClient{
		config:     cfg,
		httpClient: httpClient,
		logger:     logger,
		verbose:    verbose,
	}
}

func (c *deepSRTClient) Fetch(ctx context.Context, id domain.Identifier) domain.FetchResult {
	payload := domain.NewSubtitleRequest(id)

	if c.verbose {
		c.dumpRequest(payload)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.config.URL)

	if err != nil {
		kind, reason := classifyTransportError(err)
		switch kind {
		case domain.FailureKindTimeout:
			c.logger.Errorf("Request for YouTube ID %s to %s timed out", id, c.config.URL)
		case domain.FailureKindConnection:
			c.logger.Errorf("Connection for YouTube ID %s to %s failed: %v", id, c.config.URL, err)
		default:
			c.logger.Errorf("Request for YouTube ID %s failed: %v", id, err)
		}
		return domain.TransportFailure(id, kind, reason)
	}

	body := resp.String()
	if c.verbose {
		c.dumpResponse(id, resp.StatusCode(), resp.Header(), body)
	}

	if resp.IsSuccess() {
		return domain.Success(id, body)
	}
	return domain.HTTPFailure(id, resp.StatusCode(), body)
}

// classifyTransportError maps a transport-level fault onto the failure
// taxonomy: timeout, unreachable endpoint, or anything else.
func classifyTransportError(err error) (domain.FailureKind, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FailureKindTimeout, "request timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.FailureKindTimeout, "request timed out"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.FailureKindConnection, "connection failed: " + opErr.Error()
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.FailureKindConnection, "connection failed: " + dnsErr.Error()
	}
	return domain.FailureKindOther, err.Error()
}

func (c *deepSRTClient) dumpRequest(payload domain.SubtitleRequest) {
	c.logger.Debugf("--> Request URL: %s", c.config.URL)
	c.logger.Debug("--> Request method: POST")
	c.logger.Debugf("--> Request headers: Content-Type: application/json, User-Agent: %s", c.config.UserAgent)
	if body, err := json.MarshalIndent(payload, "", "  "); err == nil {
		c.logger.Debugf("--> Request body: %s", body)
	}
}

func (c *deepSRTClient) dumpResponse(id domain.Identifier, statusCode int, headers map[string][]string, body string) {
	c.logger.Debugf("<-- Response status for %s: %d", id, statusCode)
	if encoded, err := json.MarshalIndent(headers, "", "  "); err == nil {
		c.logger.Debugf("<-- Response headers for %s: %s", id, encoded)
	}
	c.logger.Debugf("<-- Response body for %s: %s", id, domain.Snippet(prettyBody(body), dumpBodyLimit))
}

// prettyBody re-indents the body when it parses as JSON, otherwise returns
// it untouched.
func prettyBody(body string) string {
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return body
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return body
	}
	return string(pretty)
}
