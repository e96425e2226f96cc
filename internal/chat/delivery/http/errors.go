package http

import (
	"errors"
	"net/http"

	"outreach-agent/internal/chat"
	pkgErrors "outreach-agent/pkg/errors"
)

var errGenerationFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "failed to generate a response, please try again")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrUserRequired),
		errors.Is(err, chat.ErrMessageRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrGenerationFailed):
		return errGenerationFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
