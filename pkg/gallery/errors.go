package gallery

import (
	"context"
	"errors"

	apperr "github.com/matzehuels/metgallery/pkg/errors"
	"github.com/matzehuels/metgallery/pkg/integrations"
)

// AppError converts err into a structured error for user-facing surfaces.
// Errors that already carry a code and context errors are returned unchanged.
func AppError(err error) error {
	if err == nil || apperr.GetCode(err) != "" {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch {
	case errors.Is(err, ErrEmptyQuery):
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "search query cannot be empty")
	case errors.Is(err, ErrBusy):
		return apperr.Wrap(apperr.ErrCodeBusy, err, "a load is already in progress, try again shortly")
	case errors.Is(err, ErrNoMorePages):
		return apperr.Wrap(apperr.ErrCodeNoResults, err, "no more results")
	case errors.Is(err, ErrCatalogUnavailable):
		return apperr.Wrap(apperr.ErrCodeCatalogUnavailable, err, "could not load artists")
	case errors.Is(err, integrations.ErrNotFound):
		return apperr.Wrap(apperr.ErrCodeNotFound, err, "not found in the collection")
	case errors.Is(err, integrations.ErrRateLimited):
		return apperr.Wrap(apperr.ErrCodeRateLimited, err, "the collection API is throttling requests")
	case errors.Is(err, integrations.ErrNetwork), errors.Is(err, integrations.ErrDecode):
		return apperr.Wrap(apperr.ErrCodeNetwork, err, "the collection API could not be reached")
	default:
		return apperr.Wrap(apperr.ErrCodeInternal, err, "unexpected error")
	}
}
