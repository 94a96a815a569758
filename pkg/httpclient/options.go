package httpclient

import (
	"errors"
	"time"
)

type Option func(*Client)

func UserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

func MaxAttempts(attempts int) Option {
	return func(c *Client) {
		c.maxAttempts = attempts
	}
}

func BaseRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.baseRetryDelay = delay
	}
}

func MaxRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetryDelay = delay
	}
}

func SlowThreshold(threshold time.Duration) Option {
	return func(c *Client) {
		c.slowThreshold = threshold
	}
}

func (c *Client) validate() error {
	if c.http == nil {
		return errors.New("doer must not be nil")
	}

	if c.baseURL.Scheme == "" || c.baseURL.Host == "" {
		return errors.New("base url must include scheme and host")
	}

	if c.maxAttempts <= 0 {
		return errors.New("invalid maxAttempts: must be > 0")
	}

	if c.baseRetryDelay <= 0 {
		return errors.New("invalid base retry delay: must be > 0")
	}

	if c.maxRetryDelay <= 0 {
		return errors.New("invalid max retry delay: must be > 0")
	}

	if c.baseRetryDelay > c.maxRetryDelay {
		return errors.New("baseRetryDelay cannot exceed maxRetryDelay")
	}

	if c.slowThreshold <= 0 {
		return errors.New("invalid slow threshold: must be > 0")
	}
	return nil
}
