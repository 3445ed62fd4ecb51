package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/db"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{q: db.New(pool)}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.UrlImage,
		})
	}

	return categories, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	return getProduct(ctx, r.q, productID)
}

func (r *catalogRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	rows, err := r.q.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("q.ListProductsByCategory: %w", err)
	}

	return mapProductsToDomain(rows)
}

func (r *catalogRepository) ListPopularProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListPopularProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListPopularProducts: %w", err)
	}

	return mapProductsToDomain(rows)
}

func (r *catalogRepository) ListBestSellingProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListBestSellingProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListBestSellingProducts: %w", err)
	}

	return mapProductsToDomain(rows)
}

// getProduct is shared with the cart repository, which prices new lines inside
// its own transaction.
func getProduct(ctx context.Context, q *db.Queries, productID int64) (domain.Product, error) {
	row, err := q.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row)
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.Product{
		ID:         row.ID,
		Name:       row.Name,
		Details:    row.Details,
		ImageURL:   row.UrlImage,
		Price:      price,
		Popular:    row.Popular,
		BestSeller: row.BestSeller,
		Stock:      int(row.Stock),
		Available:  row.Available,
		CategoryID: row.CategoryID,
	}, nil
}

func mapProductsToDomain(rows []db.Product) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
