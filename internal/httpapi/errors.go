package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/auth"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/service"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Errors whose own message is safe to show to the client.
var publicErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrProductNotFound,
	domain.ErrCartLineNotFound,
	domain.ErrOrderDetailsNotFound,
	domain.ErrNoOrdersForUser,
	domain.ErrEmptyCart,
	domain.ErrInvalidAction,
	domain.ErrInvalidQuantity,
	domain.ErrInvalidListing,
	domain.ErrInvalidEmail,
	domain.ErrPasswordTooShort,
	domain.ErrEmailTaken,
	domain.ErrInvalidCredentials,
	service.ErrCategoryRequired,
	auth.ErrInvalidToken,
	errMissingToken,
}

var categories = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
}

func errorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := toResponse(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"path":       c.Path(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).Error("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Error: msg})
		}
		if writeErr != nil {
			log.WithError(writeErr).Warn("error response not written")
		}
	}
}

func toResponse(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	if errors.Is(err, domain.ErrTransactionFailed) {
		return http.StatusInternalServerError, "the order could not be placed, nothing was changed"
	}

	for _, cat := range categories {
		if !errors.Is(err, cat.err) {
			continue
		}
		for _, public := range publicErrors {
			if errors.Is(err, public) {
				return cat.status, public.Error()
			}
		}
		return cat.status, cat.err.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}
