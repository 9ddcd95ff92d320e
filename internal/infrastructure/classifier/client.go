// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/pawadopt/adoption-service/pkg/errors"
	"github.com/pawadopt/adoption-service/pkg/httpclient"
)

// Client represents a breed classification service API client
type Client struct {
	config     Config
	httpClient *httpclient.Client
}

// Classify uploads the image to the classification service and decodes the
// prediction response
func (c *Client) Classify(ctx context.Context, image []byte, filename string) (*classifyResponse, error) {

	if filename == "" {
		filename = "upload.jpg"
	}

	// Build the multipart body with the image under the "file" field
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to write image payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	headers := map[string]string{
		"Content-Type": writer.FormDataContentType(),
	}

	// A bytes.Reader keeps the upload seekable so the HTTP client can
	// replay it on retry
	url := c.config.BaseURL + c.config.ClassifyPath
	resp, err := c.httpClient.Request(ctx, http.MethodPost, url, bytes.NewReader(body.Bytes()), headers)
	if err != nil {
		// Map classification service errors onto application error types
		if httpErr, ok := err.(*httpclient.RetryableError); ok {
			switch httpErr.StatusCode {
			case http.StatusBadRequest, http.StatusUnprocessableEntity:
				return nil, errors.NewValidation("classification request rejected", err)
			case http.StatusNotFound:
				return nil, errors.NewNotFound("no dog detected in image")
			default:
				return nil, errors.NewServiceUnavailable("classification service error", err)
			}
		}
		return nil, errors.NewServiceUnavailable("classification request failed", err)
	}

	var result classifyResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.NewUnexpected("failed to decode classification response", err)
	}

	if result.Error != "" {
		return nil, errors.NewNotFound(result.Error)
	}

	return &result, nil
}

// IsReady checks if the classification service is reachable
func (c *Client) IsReady(ctx context.Context) error {

	resp, err := c.httpClient.Request(ctx, http.MethodGet, c.config.BaseURL, nil, nil)
	if err != nil {
		return errors.NewServiceUnavailable("failed to check if classification service is reachable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewServiceUnavailable("classification service is not reachable", fmt.Errorf("status code: %d", resp.StatusCode))
	}

	return nil
}

// NewClient creates a new classification service API client
func NewClient(config Config) *Client {
	httpConfig := httpclient.Config{
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryDelay:   config.RetryDelay,
		RetryBackoff: true,
	}

	return &Client{
		config:     config,
		httpClient: httpclient.NewClient(httpConfig),
	}
}
