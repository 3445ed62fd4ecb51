package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/domain"
)

var (
	errBadBody   = echo.NewHTTPError(http.StatusBadRequest, "request body is not valid JSON")
	errForbidden = echo.NewHTTPError(http.StatusForbidden, "access to another user's data is not allowed")
)

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	return parseID(c.Param(name), name)
}

// ownUserID rejects path parameters naming anyone but the caller.
func ownUserID(c echo.Context) (int64, error) {
	userID, err := pathID(c, "userId")
	if err != nil {
		return 0, err
	}
	if userID != currentUser(c).ID {
		return 0, errForbidden
	}
	return userID, nil
}
