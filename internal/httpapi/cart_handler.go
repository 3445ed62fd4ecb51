package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/domain"
)

type cartHandler struct {
	cart CartService
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func registerCartRoutes(g *echo.Group, cart CartService) {
	h := &cartHandler{cart: cart}

	g.POST("/cart", h.add)
	g.PUT("/cart", h.adjust)
	g.GET("/cart/:userId", h.get)
}

func (h *cartHandler) add(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productId must be a positive integer", domain.ErrInvalidInput)
	}

	line, err := h.cart.AddOrMerge(c.Request().Context(), currentUser(c).ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, line)
}

func (h *cartHandler) adjust(c echo.Context) error {
	productID, err := parseID(c.QueryParam("productId"), "productId")
	if err != nil {
		return err
	}

	action := c.QueryParam("action")
	line, removed, err := h.cart.Adjust(c.Request().Context(), currentUser(c).ID, productID, action)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("product %d quantity is now %d", productID, line.Quantity)
	if removed {
		msg = fmt.Sprintf("product %d removed from cart", productID)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *cartHandler) get(c echo.Context) error {
	userID, err := ownUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cart.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}

	return c.JSON(http.StatusOK, lines)
}
