package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
)

var ErrCategoryRequired = fmt.Errorf("%w: categoryId is required for the 'category' listing", domain.ErrInvalidInput)

type Catalog struct {
	repo port.CatalogRepository
}

func NewCatalog(repo port.CatalogRepository) *Catalog {
	return &Catalog{repo: repo}
}

func (s *Catalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Catalog) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

// ListProducts dispatches on listing. Popular and best-selling products are
// selected by their own flags and ignore categoryID.
func (s *Catalog) ListProducts(ctx context.Context, listing domain.ProductListing, categoryID int64) ([]domain.Product, error) {
	switch listing {
	case domain.ListingByCategory:
		if categoryID <= 0 {
			return nil, ErrCategoryRequired
		}
		return s.repo.ListProductsByCategory(ctx, categoryID)
	case domain.ListingPopular:
		return s.repo.ListPopularProducts(ctx)
	case domain.ListingBestSeller:
		return s.repo.ListBestSellingProducts(ctx)
	default:
		return nil, domain.ErrInvalidListing
	}
}
