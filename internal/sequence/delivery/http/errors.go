package http

import (
	"errors"
	"net/http"

	"outreach-agent/internal/sequence"
	pkgErrors "outreach-agent/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sequence.ErrSequenceNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "sequence not found")
	case errors.Is(err, sequence.ErrStepNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "step not found")
	case errors.Is(err, sequence.ErrPositionRequired),
		errors.Is(err, sequence.ErrStepsRequired),
		errors.Is(err, sequence.ErrStepRequired),
		errors.Is(err, sequence.ErrFeedbackRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, sequence.ErrInvalidGeneration):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "could not generate a sequence, please try again")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
