package dogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rescue-dog-favorites/internal/domain/dogs"
	"rescue-dog-favorites/internal/platform/httpclient"
	"rescue-dog-favorites/internal/platform/logger"
)

var (
	ErrNotConfigured = errors.New("dog api client not configured")
	ErrUpstream      = errors.New("dog api upstream error")
)

// Config del cliente de la API de perros.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond <= 0 desactiva el rate limit.
	RequestsPerSecond float64
	Burst             int
}

// Client implementa dogs.Source contra GET /api/animals/id/{id}.
type Client struct {
	http *httpclient.Client
	log  logger.Logger
}

func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst)

	if log == nil {
		log = logger.Discard()
	}
	return &Client{http: hc, log: log.With(map[string]any{"adapter": "dogapi"})}, nil
}

func (c *Client) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	var raw json.RawMessage
	err := c.http.DoJSON(ctx, "GET", fmt.Sprintf("/api/animals/id/%d", id), nil, nil, &raw)
	if err != nil {
		if httpclient.IsNotFound(err) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	d, err := dogs.Decode(raw)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("%w: dog %d: %v", ErrUpstream, id, err)
	}
	if d.Profiler.Malformed {
		c.log.Debug("malformed dog_profiler_data ignored", map[string]any{"dog_id": id})
	}
	return d, nil
}
