package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/shopspring/decimal"
)

type orderHandler struct {
	orders OrderService
}

type placeOrderRequest struct {
	Address    string           `json:"address"`
	TotalValue *decimal.Decimal `json:"totalValue,omitempty"`
}

type placeOrderResponse struct {
	OrderID int64        `json:"orderId"`
	Total   domain.Money `json:"totalValue"`
}

func registerOrderRoutes(g *echo.Group, orders OrderService) {
	h := &orderHandler{orders: orders}

	g.POST("/order", h.place)
	g.GET("/order/:orderId/details", h.details)
	g.GET("/order/by-user/:userId", h.byUser)
}

func (h *orderHandler) place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), currentUser(c).ID, domain.OrderMetadata{
		Address:      req.Address,
		ClaimedTotal: req.TotalValue,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, placeOrderResponse{OrderID: order.ID, Total: order.Total})
}

func (h *orderHandler) details(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	details, err := h.orders.OrderDetails(c.Request().Context(), currentUser(c).ID, orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, details)
}

func (h *orderHandler) byUser(c echo.Context) error {
	userID, err := ownUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.OrdersByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}
