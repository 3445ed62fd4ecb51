package port

import (
	"context"

	"github.com/nikolayk812/foodstore/internal/domain"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	ListPopularProducts(ctx context.Context) ([]domain.Product, error)
	ListBestSellingProducts(ctx context.Context) ([]domain.Product, error)
}
