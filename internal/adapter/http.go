package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/utils"
	"github.com/moviemesh/moviemesh/models"
)

type httpReviewsAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPReviewsAdapter constructs an HTTP/REST implementation of
// [ReviewsAdapter]. It normalises and validates the base URL from
// adapterCfg.ReviewsAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout. Calls are attempted exactly
// once; the timeout is the only bound on a slow remote.
//
// Returns an error if adapterCfg.ReviewsAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPReviewsAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ReviewsAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ReviewsAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid reviews service address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpReviewsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchReviewsByMovie implements [ReviewsAdapter]. It GETs
// /reviews?movieId=N and decodes the response body into a review slice.
func (h *httpReviewsAdapter) FetchReviewsByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	var reviews []models.Review

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("movieId", strconv.FormatInt(movieID, 10)).
		SetResult(&reviews).
		Get("/reviews")
	if err != nil {
		h.logger.Err(err).Int64("movieId", movieID).Msg("fetch reviews request failed")
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return reviews, nil
}

// DeleteReviewsByMovie implements [ReviewsAdapter]. It DELETEs
// /reviews?movieId=N, forwarding the caller's Authorization header value
// unchanged.
func (h *httpReviewsAdapter) DeleteReviewsByMovie(ctx context.Context, movieID int64, authorization string) error {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("movieId", strconv.FormatInt(movieID, 10))
	if authorization != "" {
		req.SetHeader("Authorization", authorization)
	}

	resp, err := req.Delete("/reviews")
	if err != nil {
		h.logger.Err(err).Int64("movieId", movieID).Msg("delete reviews request failed")
		return fmt.Errorf("%w: %w", ErrRemoteUnreachable, err)
	}

	return mapHTTPError(resp)
}
