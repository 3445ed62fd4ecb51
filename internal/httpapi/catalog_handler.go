package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/domain"
)

type catalogHandler struct {
	catalog CatalogService
}

func registerCatalogRoutes(g *echo.Group, catalog CatalogService) {
	h := &catalogHandler{catalog: catalog}

	g.GET("/categories", h.listCategories)
	g.GET("/products", h.listProducts)
	g.GET("/products/:id", h.getProduct)
}

func (h *catalogHandler) listCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	return c.JSON(http.StatusOK, categories)
}

// listProducts serves ?productType=category|popular|bestselling[&categoryId=N].
func (h *catalogHandler) listProducts(c echo.Context) error {
	listing, err := domain.ParseProductListing(c.QueryParam("productType"))
	if err != nil {
		return err
	}

	var categoryID int64
	if raw := c.QueryParam("categoryId"); raw != "" {
		if categoryID, err = parseID(raw, "categoryId"); err != nil {
			return err
		}
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), listing, categoryID)
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return c.JSON(http.StatusOK, products)
}

func (h *catalogHandler) getProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}
