package httpapi_test

import (
	"context"
	"io"

	"github.com/nikolayk812/foodstore/internal/auth"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/httpapi"
	"github.com/nikolayk812/foodstore/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

const (
	validToken  = "valid-token"
	callerEmail = "ann@example.com"
	callerID    = int64(7)
)

func eur(s string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(s), currency.EUR)
}

type fakeTokens struct{}

func (fakeTokens) Parse(token string) (*auth.Claims, error) {
	if token != validToken {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Email: callerEmail}, nil
}

type fakeIdentity struct {
	registered []service.Registration
	resolveErr error
}

func (f *fakeIdentity) Register(_ context.Context, reg service.Registration) (domain.User, error) {
	if reg.Email == "taken@example.com" {
		return domain.User{}, domain.ErrEmailTaken
	}
	f.registered = append(f.registered, reg)
	return domain.User{ID: 11, Name: reg.Name, Email: reg.Email}, nil
}

func (f *fakeIdentity) Login(_ context.Context, email, password string) (service.Session, error) {
	if email != callerEmail || password != "secret-password" {
		return service.Session{}, domain.ErrInvalidCredentials
	}
	return service.Session{AccessToken: validToken, TokenType: "Bearer", UserID: callerID}, nil
}

func (f *fakeIdentity) ResolveUser(_ context.Context, email string) (domain.User, error) {
	if f.resolveErr != nil {
		return domain.User{}, f.resolveErr
	}
	return domain.User{ID: callerID, Email: email}, nil
}

type fakeCatalog struct {
	products []domain.Product

	gotListing    domain.ProductListing
	gotCategoryID int64
}

func (f *fakeCatalog) ListCategories(context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: "Burgers"}}, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, productID int64) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (f *fakeCatalog) ListProducts(_ context.Context, listing domain.ProductListing, categoryID int64) ([]domain.Product, error) {
	f.gotListing = listing
	f.gotCategoryID = categoryID
	if listing == domain.ListingByCategory && categoryID == 0 {
		return nil, service.ErrCategoryRequired
	}
	return f.products, nil
}

type fakeCart struct {
	cart     domain.Cart
	addedFor int64
}

func (f *fakeCart) AddOrMerge(_ context.Context, userID, productID int64, quantity int) (domain.CartLine, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.CartLine{}, err
	}
	f.addedFor = userID
	return domain.CartLine{ID: 1, ProductID: productID, Quantity: quantity}, nil
}

func (f *fakeCart) Adjust(_ context.Context, _, productID int64, rawAction string) (domain.CartLine, bool, error) {
	action, err := domain.ParseCartAction(rawAction)
	if err != nil {
		return domain.CartLine{}, false, err
	}
	qty, removed := action.Apply(2)
	return domain.CartLine{ProductID: productID, Quantity: qty}, removed, nil
}

func (f *fakeCart) Snapshot(context.Context, int64) (domain.Cart, error) {
	return f.cart, nil
}

type fakeOrders struct {
	placeErr error
	gotMeta  domain.OrderMetadata
}

func (f *fakeOrders) PlaceOrder(_ context.Context, userID int64, meta domain.OrderMetadata) (domain.Order, error) {
	if f.placeErr != nil {
		return domain.Order{}, f.placeErr
	}
	f.gotMeta = meta
	return domain.Order{ID: 42, UserID: userID, Total: eur("38.00")}, nil
}

func (f *fakeOrders) OrderDetails(_ context.Context, _, orderID int64) ([]domain.OrderDetail, error) {
	if orderID != 42 {
		return nil, domain.ErrOrderDetailsNotFound
	}
	return []domain.OrderDetail{{ID: 1, OrderID: 42, ProductID: 1, Quantity: 2}}, nil
}

func (f *fakeOrders) OrdersByUser(context.Context, int64) ([]domain.Order, error) {
	return []domain.Order{{ID: 42, UserID: callerID}}, nil
}

type fixture struct {
	catalog  *fakeCatalog
	cart     *fakeCart
	orders   *fakeOrders
	identity *fakeIdentity
	deps     httpapi.Deps
}

func newFixture() *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		catalog:  &fakeCatalog{},
		cart:     &fakeCart{},
		orders:   &fakeOrders{},
		identity: &fakeIdentity{},
	}
	f.deps = httpapi.Deps{
		Catalog:  f.catalog,
		Cart:     f.cart,
		Orders:   f.orders,
		Identity: f.identity,
		Tokens:   fakeTokens{},
		Log:      log,
	}
	return f
}
