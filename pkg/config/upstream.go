package config

import (
	"fmt"
	"time"
)

// UpstreamConfig holds the location and timeout of an external HTTP data
// source (product catalog, exchange rates).
type UpstreamConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *UpstreamConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("upstream URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid upstream timeout: %v", c.Timeout)
	}
	return nil
}
