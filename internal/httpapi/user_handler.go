package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/service"
)

type userHandler struct {
	identity IdentityService
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerUserRoutes(g *echo.Group, identity IdentityService) {
	h := &userHandler{identity: identity}

	g.POST("/users/register", h.register)
	g.POST("/users/login", h.login)
}

func (h *userHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}

	user, err := h.identity.Register(c.Request().Context(), service.Registration{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	})
}

func (h *userHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}

	session, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, session)
}
