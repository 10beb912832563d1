// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with sibling services of the mesh.
//
// The primary abstraction is [ReviewsAdapter], which decouples the movies
// service layer from the reviews service wire protocol. The package ships an
// HTTP/REST implementation ([NewHTTPReviewsAdapter]).
//
// Failed calls are surfaced in one of two shapes so that callers can tell
// a rejection from an outage apart: a *[RejectedError] when the remote
// answered with a non-2xx status, and an error wrapping
// [ErrRemoteUnreachable] when no usable response arrived at all.
package adapter

import (
	"context"

	"github.com/moviemesh/moviemesh/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/reviews_adapter_mock.go -package=mock

// ReviewsAdapter defines the calls the movies service makes into the reviews
// service. Implementations are responsible for serialisation, authentication
// header propagation, and mapping transport-level failures to the error
// shapes defined in this package.
type ReviewsAdapter interface {
	// FetchReviewsByMovie retrieves every review of the given movie.
	// The listing endpoint is public, so no credentials are attached.
	FetchReviewsByMovie(ctx context.Context, movieID int64) ([]models.Review, error)

	// DeleteReviewsByMovie removes every review of the given movie on the
	// remote side. The caller's Authorization header value is forwarded
	// verbatim so the remote service applies its own access checks.
	DeleteReviewsByMovie(ctx context.Context, movieID int64, authorization string) error
}
