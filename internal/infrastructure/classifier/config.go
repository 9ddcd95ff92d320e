// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package classifier

import (
	"fmt"
	"time"
)

var defaultClassifyPath = "/predict"

// Config holds the configuration for the remote breed classifier client
type Config struct {
	// BaseURL is the base URL of the breed classification service
	BaseURL string

	// ClassifyPath is the path of the classification endpoint (default: /predict)
	ClassifyPath string

	// Timeout is the HTTP client timeout for classification requests
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration
}

// NewConfig creates a new classifier configuration with the provided parameters
func NewConfig(baseURL, classifyPath, timeout string, maxRetries int, retryDelay string) (Config, error) {
	// Validate required parameters
	if baseURL == "" {
		return Config{}, fmt.Errorf("base URL is required for classifier configuration")
	}

	// Set defaults for optional parameters
	if classifyPath == "" {
		classifyPath = defaultClassifyPath
	}

	if timeout == "" {
		timeout = "30s"
	}
	timeoutDuration, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timeout duration: %w", err)
	}

	// Zero is valid and disables retries
	if maxRetries < 0 {
		return Config{}, fmt.Errorf("max retries must not be negative: %d", maxRetries)
	}

	if retryDelay == "" {
		retryDelay = "1s"
	}
	retryDelayDuration, err := time.ParseDuration(retryDelay)
	if err != nil {
		return Config{}, fmt.Errorf("invalid retry delay duration: %w", err)
	}

	return Config{
		BaseURL:      baseURL,
		ClassifyPath: classifyPath,
		Timeout:      timeoutDuration,
		MaxRetries:   maxRetries,
		RetryDelay:   retryDelayDuration,
	}, nil
}
