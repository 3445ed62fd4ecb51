package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/migrations"
	"github.com/nikolayk812/foodstore/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

// Seeded catalog rows used across suites.
const (
	hamburgerID = int64(1)  // 15.00 EUR, popular, best seller
	comboID     = int64(4)  // 25.00 EUR, popular
	cookieID    = int64(17) // 8.00 EUR, popular
	vanillaID   = int64(18) // 8.00 EUR, best seller
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	if err := migrations.Up(connStr); err != nil {
		return nil, "", fmt.Errorf("migrations.Up: %w", err)
	}

	return postgresContainer, connStr, nil
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE outbox_events, order_details, orders, cart_items, users CASCADE")
	return err
}

func createUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user, err := repository.NewUser(pool).CreateUser(t.Context(), randomUser())
	require.NoError(t, err)

	return user
}

func randomUser() domain.User {
	return domain.User{
		Name:         gofakeit.Name(),
		Email:        strings.ToLower(gofakeit.Email()),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 60),
		PhoneNumber:  gofakeit.Phone(),
	}
}

var moneyComparer = cmp.Comparer(func(x, y domain.Money) bool {
	return x.Equal(y)
})

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartLine{}, "CreatedAt"),
		moneyComparer,
		currencyComparer,
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
