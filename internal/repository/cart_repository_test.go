package repository_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/nikolayk812/foodstore/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"
)

type cartRepositorySuite struct {
	suite.Suite

	repo      port.CartRepository
	pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	container, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)
	suite.container = container

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	suite.NoError(testcontainers.TerminateContainer(suite.container))
}

func (suite *cartRepositorySuite) TestAddOrMerge() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		productID int64
		quantity  int
		noUser    bool
		wantQty   int
		wantTotal string
		wantError error
	}{
		{
			name:      "add new line at catalog price: ok",
			productID: hamburgerID,
			quantity:  2,
			wantQty:   2,
			wantTotal: "30.00 EUR",
		},
		{
			name:      "unknown product: not found",
			productID: 9999,
			quantity:  1,
			wantError: domain.ErrProductNotFound,
		},
		{
			name:      "zero quantity: invalid",
			productID: hamburgerID,
			quantity:  0,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "quantity above line cap: invalid",
			productID: hamburgerID,
			quantity:  domain.MaxLineQuantity + 1,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "quantity wider than int32: invalid",
			productID: cookieID,
			quantity:  1<<32 + 1,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "unknown user: not found",
			productID: cookieID,
			quantity:  1,
			noUser:    true,
			wantError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ownerID := int64(987654)
			if !tt.noUser {
				ownerID = createUser(t, suite.pool).ID
			}

			line, err := suite.repo.AddOrMerge(ctx, ownerID, tt.productID, tt.quantity)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.productID, line.ProductID)
			assert.Equal(t, tt.wantQty, line.Quantity)
			assert.Equal(t, tt.wantTotal, line.Total.String())
			assert.NotEmpty(t, line.ProductName)

			cart, err := suite.repo.GetCart(ctx, ownerID)
			require.NoError(t, err)
			require.Len(t, cart.Lines, 1)
			assert.Equal(t, line.ID, cart.Lines[0].ID)
			assert.False(t, cart.Lines[0].CreatedAt.IsZero())
		})
	}
}

func (suite *cartRepositorySuite) TestAddOrMerge_MergesQuantities() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	user := createUser(t, suite.pool)

	first, err := suite.repo.AddOrMerge(ctx, user.ID, comboID, 2)
	require.NoError(t, err)

	second, err := suite.repo.AddOrMerge(ctx, user.ID, comboID, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, "125.00 EUR", second.Total.String())

	cart, err := suite.repo.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func (suite *cartRepositorySuite) TestAddOrMerge_MergeAboveCap() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	user := createUser(t, suite.pool)

	_, err := suite.repo.AddOrMerge(ctx, user.ID, comboID, 600)
	require.NoError(t, err)

	_, err = suite.repo.AddOrMerge(ctx, user.ID, comboID, 600)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	cart, err := suite.repo.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 600, cart.Lines[0].Quantity)
	assert.Equal(t, "15000.00 EUR", cart.Lines[0].Total.String())
}

func (suite *cartRepositorySuite) TestAddOrMerge_KeepsStoredUnitPrice() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	user := createUser(t, suite.pool)

	_, err := suite.repo.AddOrMerge(ctx, user.ID, cookieID, 1)
	require.NoError(t, err)

	_, err = suite.pool.Exec(ctx, "UPDATE products SET price_amount = 9.50 WHERE id = $1", cookieID)
	require.NoError(t, err)
	defer func() {
		_, err := suite.pool.Exec(ctx, "UPDATE products SET price_amount = 8.00 WHERE id = $1", cookieID)
		require.NoError(t, err)
	}()

	line, err := suite.repo.AddOrMerge(ctx, user.ID, cookieID, 1)
	require.NoError(t, err)

	assert.Equal(t, "8.00 EUR", line.UnitPrice.String())
	assert.Equal(t, "16.00 EUR", line.Total.String())
}

func (suite *cartRepositorySuite) TestAddOrMerge_Concurrent() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	user := createUser(t, suite.pool)

	const workers = 10

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			_, err := suite.repo.AddOrMerge(ctx, user.ID, vanillaID, 1)
			return err
		})
	}
	require.NoError(t, g.Wait())

	cart, err := suite.repo.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, workers, cart.Lines[0].Quantity)
	assert.Equal(t, "80.00 EUR", cart.Lines[0].Total.String())
}

func (suite *cartRepositorySuite) TestAdjust() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		setupQty    int
		productID   int64
		action      domain.CartAction
		wantQty     int
		wantRemoved bool
		wantError   error
	}{
		{
			name:      "increase: ok",
			setupQty:  1,
			productID: hamburgerID,
			action:    domain.ActionIncrease,
			wantQty:   2,
		},
		{
			name:      "decrease above one: ok",
			setupQty:  3,
			productID: hamburgerID,
			action:    domain.ActionDecrease,
			wantQty:   2,
		},
		{
			name:        "decrease at one removes line: ok",
			setupQty:    1,
			productID:   hamburgerID,
			action:      domain.ActionDecrease,
			wantRemoved: true,
		},
		{
			name:        "delete: ok",
			setupQty:    4,
			productID:   hamburgerID,
			action:      domain.ActionDelete,
			wantRemoved: true,
		},
		{
			name:      "increase at line cap: invalid",
			setupQty:  domain.MaxLineQuantity,
			productID: hamburgerID,
			action:    domain.ActionIncrease,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "missing line: not found",
			setupQty:  1,
			productID: cookieID,
			action:    domain.ActionIncrease,
			wantError: domain.ErrCartLineNotFound,
		},
		{
			name:      "unknown action: invalid input",
			setupQty:  2,
			productID: hamburgerID,
			action:    domain.CartAction("invalidword"),
			wantError: domain.ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()
			user := createUser(t, suite.pool)

			_, err := suite.repo.AddOrMerge(ctx, user.ID, hamburgerID, tt.setupQty)
			require.NoError(t, err)

			before, err := suite.repo.GetCart(ctx, user.ID)
			require.NoError(t, err)

			line, removed, err := suite.repo.Adjust(ctx, user.ID, tt.productID, tt.action)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)

				after, err := suite.repo.GetCart(ctx, user.ID)
				require.NoError(t, err)
				assertCart(t, before, after)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)

			cart, err := suite.repo.GetCart(ctx, user.ID)
			require.NoError(t, err)

			if tt.wantRemoved {
				assert.True(t, cart.IsEmpty())
				return
			}

			require.Len(t, cart.Lines, 1)
			assert.Equal(t, tt.wantQty, line.Quantity)
			assert.Equal(t, tt.wantQty, cart.Lines[0].Quantity)
			assert.True(t, cart.Lines[0].Total.Equal(cart.Lines[0].UnitPrice.Times(tt.wantQty)))
		})
	}
}

func (suite *cartRepositorySuite) TestGetCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	empty := createUser(t, suite.pool)
	cart, err := suite.repo.GetCart(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, empty.ID, cart.OwnerID)
	assert.Empty(t, cart.Lines)

	_, err = suite.repo.GetCart(ctx, 0)
	require.EqualError(t, err, "ownerID is not valid")
}

func (suite *cartRepositorySuite) TestClear() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	user := createUser(t, suite.pool)

	a, err := suite.repo.AddOrMerge(ctx, user.ID, hamburgerID, 1)
	require.NoError(t, err)
	b, err := suite.repo.AddOrMerge(ctx, user.ID, cookieID, 1)
	require.NoError(t, err)

	deleted, err := suite.repo.Clear(ctx, []int64{a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = suite.repo.Clear(ctx, []int64{a.ID, b.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleted 1 of 2 cart lines")

	deleted, err = suite.repo.Clear(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func (suite *cartRepositorySuite) TestClearWithTx_RollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	user := createUser(t, suite.pool)

	line, err := suite.repo.AddOrMerge(ctx, user.ID, hamburgerID, 2)
	require.NoError(t, err)

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	deleted, err := repository.NewCartWithTx(tx).Clear(ctx, []int64{line.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, tx.Rollback(ctx))

	cart, err := suite.repo.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, line.ID, cart.Lines[0].ID)
}

func (suite *cartRepositorySuite) deleteAll() {
	suite.NoError(truncateAll(suite.T().Context(), suite.pool))
}
