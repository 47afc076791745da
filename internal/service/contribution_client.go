package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"daily-quotes/internal/domain"
	apperrors "daily-quotes/pkg/errors"
)

// HTTPContributionNotifier posts contributions to the receiver endpoint.
type HTTPContributionNotifier struct {
	url    string
	apiKey string
	client *http.Client
	logger domain.Logger
}

func NewHTTPContributionNotifier(url, apiKey string, timeout time.Duration, logger domain.Logger) *HTTPContributionNotifier {
	return &HTTPContributionNotifier{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Notify returns a network AppError when the endpoint cannot be reached and
// a processing AppError for any non-2xx response.
func (n *HTTPContributionNotifier) Notify(ctx context.Context, payload domain.ContributionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.NewInternalError("Failed to encode contribution", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewNetworkError("Invalid contribution endpoint", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return apperrors.NewNetworkError("Contribution endpoint unreachable", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewProcessingError("Contribution rejected",
			fmt.Errorf("contribution endpoint returned status: %d", resp.StatusCode))
	}

	n.logger.Debug("Contribution delivered", "quote_id", payload.QuoteID, "status", resp.StatusCode)
	return nil
}
