// Package httpapi exposes the storefront over a JSON REST API.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nikolayk812/foodstore/internal/auth"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/service"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProducts(ctx context.Context, listing domain.ProductListing, categoryID int64) ([]domain.Product, error)
}

type CartService interface {
	AddOrMerge(ctx context.Context, userID, productID int64, quantity int) (domain.CartLine, error)
	Adjust(ctx context.Context, userID, productID int64, rawAction string) (domain.CartLine, bool, error)
	Snapshot(ctx context.Context, userID int64) (domain.Cart, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, meta domain.OrderMetadata) (domain.Order, error)
	OrderDetails(ctx context.Context, userID, orderID int64) ([]domain.OrderDetail, error)
	OrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type IdentityService interface {
	Register(ctx context.Context, reg service.Registration) (domain.User, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	ResolveUser(ctx context.Context, email string) (domain.User, error)
}

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type Deps struct {
	Catalog  CatalogService
	Cart     CartService
	Orders   OrderService
	Identity IdentityService
	Tokens   TokenParser
	Log      logrus.FieldLogger

	// Ping reports store health for /health. Optional.
	Ping           func(ctx context.Context) error
	RequestTimeout time.Duration
}

func NewServer(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(deps.Log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(accessLog(deps.Log))
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("foodstore")))
	if deps.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(deps.RequestTimeout))
	}

	e.GET("/health", health(deps.Ping))

	api := e.Group("/api")
	registerUserRoutes(api, deps.Identity)
	registerCatalogRoutes(api, deps.Catalog)

	authed := api.Group("", bearerAuth(deps.Tokens), requireUser(deps.Identity))
	registerCartRoutes(authed, deps.Cart)
	registerOrderRoutes(authed, deps.Orders)

	return e
}

func health(ping func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ping != nil {
			if err := ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
