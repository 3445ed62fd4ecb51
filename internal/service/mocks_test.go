package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func eur(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), currency.EUR)
}

// --- catalog ---

type mockCatalogRepository struct {
	products []domain.Product
	calls    []string
}

func (m *mockCatalogRepository) ListCategories(context.Context) ([]domain.Category, error) {
	m.calls = append(m.calls, "ListCategories")
	return []domain.Category{{ID: 1, Name: "Lanches"}}, nil
}

func (m *mockCatalogRepository) GetProduct(_ context.Context, productID int64) (domain.Product, error) {
	m.calls = append(m.calls, "GetProduct")
	for _, p := range m.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (m *mockCatalogRepository) ListProductsByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	m.calls = append(m.calls, "ListProductsByCategory")
	var out []domain.Product
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockCatalogRepository) ListPopularProducts(context.Context) ([]domain.Product, error) {
	m.calls = append(m.calls, "ListPopularProducts")
	var out []domain.Product
	for _, p := range m.products {
		if p.Popular {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockCatalogRepository) ListBestSellingProducts(context.Context) ([]domain.Product, error) {
	m.calls = append(m.calls, "ListBestSellingProducts")
	var out []domain.Product
	for _, p := range m.products {
		if p.BestSeller {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- cart ---

type mockCartRepository struct {
	mu       sync.Mutex
	prices   map[int64]domain.Money
	lines    map[int64][]domain.CartLine
	nextID   int64
	getCalls int
	err      error

	// afterRead runs once, after the next GetCart has read its lines.
	afterRead func()
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{
		prices: map[int64]domain.Money{1: eur("15.00"), 17: eur("8.00")},
		lines:  map[int64][]domain.CartLine{},
	}
}

func (m *mockCartRepository) GetCart(ctx context.Context, ownerID int64) (domain.Cart, error) {
	m.mu.Lock()
	m.getCalls++
	if m.err != nil {
		m.mu.Unlock()
		return domain.Cart{}, m.err
	}
	cart := domain.Cart{OwnerID: ownerID, Lines: append([]domain.CartLine(nil), m.lines[ownerID]...)}
	hook := m.afterRead
	m.afterRead = nil
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (m *mockCartRepository) AddOrMerge(_ context.Context, ownerID, productID int64, quantity int) (domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	price, ok := m.prices[productID]
	if !ok {
		return domain.CartLine{}, domain.ErrProductNotFound
	}

	lines := m.lines[ownerID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			lines[i].Total = lines[i].UnitPrice.Times(lines[i].Quantity)
			return lines[i], nil
		}
	}

	m.nextID++
	line := domain.CartLine{ID: m.nextID, ProductID: productID, UnitPrice: price, Quantity: quantity, Total: price.Times(quantity)}
	m.lines[ownerID] = append(lines, line)
	return line, nil
}

func (m *mockCartRepository) Adjust(_ context.Context, ownerID, productID int64, action domain.CartAction) (domain.CartLine, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.lines[ownerID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		qty, removed := action.Apply(lines[i].Quantity)
		if removed {
			line := lines[i]
			m.lines[ownerID] = append(lines[:i], lines[i+1:]...)
			return line, true, nil
		}
		lines[i].Quantity = qty
		lines[i].Total = lines[i].UnitPrice.Times(qty)
		return lines[i], false, nil
	}
	return domain.CartLine{}, false, domain.ErrCartLineNotFound
}

func (m *mockCartRepository) Clear(context.Context, []int64) (int64, error) {
	return 0, errors.New("not used by the service")
}

type mockCartCache struct {
	mu       sync.Mutex
	carts    map[int64]domain.Cart
	versions map[int64]int64
	deletes  []int64
	getErr   error
}

func newMockCartCache() *mockCartCache {
	return &mockCartCache{carts: map[int64]domain.Cart{}, versions: map[int64]int64{}}
}

func (m *mockCartCache) Get(_ context.Context, ownerID int64) (domain.Cart, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return domain.Cart{}, false, m.getErr
	}
	cart, ok := m.carts[ownerID]
	return cart, ok, nil
}

func (m *mockCartCache) Version(_ context.Context, ownerID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.versions[ownerID], nil
}

func (m *mockCartCache) Set(_ context.Context, cart domain.Cart, version int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.versions[cart.OwnerID] != version {
		return false, nil
	}
	m.carts[cart.OwnerID] = cart
	return true, nil
}

func (m *mockCartCache) Delete(_ context.Context, ownerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, ownerID)
	m.versions[ownerID]++
	m.deletes = append(m.deletes, ownerID)
	return nil
}

// --- orders ---

type mockOrderRepository struct {
	placedAt time.Time
	order    domain.Order
	err      error
	details  []domain.OrderDetail
	orders   []domain.Order
}

func (m *mockOrderRepository) PlaceOrder(_ context.Context, userID int64, meta domain.OrderMetadata, placedAt time.Time) (domain.Order, error) {
	m.placedAt = placedAt
	if m.err != nil {
		return domain.Order{}, m.err
	}
	order := m.order
	order.UserID = userID
	order.Address = meta.Address
	order.OrderDate = placedAt
	return order, nil
}

func (m *mockOrderRepository) GetOrderDetails(context.Context, int64, int64) ([]domain.OrderDetail, error) {
	if len(m.details) == 0 {
		return nil, domain.ErrOrderDetailsNotFound
	}
	return m.details, nil
}

func (m *mockOrderRepository) ListOrdersByUser(context.Context, int64) ([]domain.Order, error) {
	if len(m.orders) == 0 {
		return nil, domain.ErrNoOrdersForUser
	}
	return m.orders, nil
}

// --- users ---

type mockUserRepository struct {
	users  map[string]domain.User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]domain.User{}}
}

func (m *mockUserRepository) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := m.users[user.Email]; ok {
		return domain.User{}, domain.ErrEmailTaken
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return user, nil
}

func (m *mockUserRepository) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

type mockTokenIssuer struct {
	issued []string
}

func (m *mockTokenIssuer) Issue(email string) (string, time.Time, error) {
	m.issued = append(m.issued, email)
	return "token-for-" + email, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}
