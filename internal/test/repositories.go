package test

import (
	"context"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateOrderFn    func(context.Context, repository.CreateOrderParams) (*model.Order, error)
	GetByIDFn        func(context.Context, string) (*model.Order, error)
	GetByOperationFn func(context.Context, string) (*model.Order, error)
	ListByUserFn     func(context.Context, int64) ([]model.Order, error)
	SetLinkFn        func(context.Context, string, string, string) error
	SelectBatchFn    func(context.Context, int) ([]model.Order, error)
	MarkPaidFn       func(context.Context, string) error
	MarkRefundedFn   func(context.Context, string) error
	UpdateStatusFn   func(context.Context, string, model.OrderStatus) error

	CreateCalls []repository.CreateOrderParams
	Orders      []model.Order
	Awaiting    []model.Order
	Paid        []string
	Refunded    []string
	Links       map[string]string
	Updates     []StatusUpdateCall
}

// CreateOrder tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) CreateOrder(ctx context.Context, params repository.CreateOrderParams) (*model.Order, error) {
	s.CreateCalls = append(s.CreateCalls, params)
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, params)
	}
	return &model.Order{
		ID:             "order-1",
		UserID:         params.UserID,
		RobloxUsername: params.RobloxUsername,
		Status:         model.OrderStatusNew,
		PaymentStatus:  model.PaymentStatusPending,
	}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByOperationID resolves orders by gateway operation identifier.
func (s *OrderRepositoryStub) GetByOperationID(ctx context.Context, operationID string) (*model.Order, error) {
	if s.GetByOperationFn != nil {
		return s.GetByOperationFn(ctx, operationID)
	}
	for _, o := range s.Orders {
		if o.OperationID != nil && *o.OperationID == operationID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// SetPaymentLink records the stored link.
func (s *OrderRepositoryStub) SetPaymentLink(ctx context.Context, orderID, operationID, paymentURL string) error {
	if s.SetLinkFn != nil {
		return s.SetLinkFn(ctx, orderID, operationID, paymentURL)
	}
	if s.Links == nil {
		s.Links = make(map[string]string)
	}
	s.Links[orderID] = operationID
	return nil
}

// SelectBatchAwaitingPayment returns queued unsettled orders.
func (s *OrderRepositoryStub) SelectBatchAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectBatchFn != nil {
		return s.SelectBatchFn(ctx, limit)
	}
	return s.Awaiting, nil
}

// MarkPaid records paid order identifiers.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, orderID string) error {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, orderID)
	}
	s.Paid = append(s.Paid, orderID)
	return nil
}

// MarkRefunded records refunded order identifiers.
func (s *OrderRepositoryStub) MarkRefunded(ctx context.Context, orderID string) error {
	if s.MarkRefundedFn != nil {
		return s.MarkRefundedFn(ctx, orderID)
	}
	s.Refunded = append(s.Refunded, orderID)
	return nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.Updates = append(s.Updates, StatusUpdateCall{OrderID: orderID, Status: status})
	return nil
}

// ProductRepositoryStub lets tests control catalog data.
type ProductRepositoryStub struct {
	CreateFn      func(context.Context, *model.Product) (*model.Product, error)
	GetByIDFn     func(context.Context, string) (*model.Product, error)
	ListActiveFn  func(context.Context) ([]model.Product, error)
	UpdateStockFn func(context.Context, string, int) error

	Products   []model.Product
	StockCalls map[string]int
}

// Create echoes the product or delegates to override.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	s.Products = append(s.Products, *product)
	return product, nil
}

// GetByID returns a matching stored product.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive returns the stored products.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	return s.Products, nil
}

// UpdateStock records the new absolute stock.
func (s *ProductRepositoryStub) UpdateStock(ctx context.Context, id string, stock int) error {
	if s.UpdateStockFn != nil {
		return s.UpdateStockFn(ctx, id, stock)
	}
	if s.StockCalls == nil {
		s.StockCalls = make(map[string]int)
	}
	s.StockCalls[id] = stock
	return nil
}

// RobuxItemRepositoryStub serves fixed-price packages in tests.
type RobuxItemRepositoryStub struct {
	Items []model.RobuxItem
}

// GetByAmount finds a package by Robux amount.
func (s *RobuxItemRepositoryStub) GetByAmount(ctx context.Context, amount int) (*model.RobuxItem, error) {
	for _, item := range s.Items {
		if item.Amount == amount {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive returns active packages only.
func (s *RobuxItemRepositoryStub) ListActive(ctx context.Context) ([]model.RobuxItem, error) {
	var active []model.RobuxItem
	for _, item := range s.Items {
		if item.Active {
			active = append(active, item)
		}
	}
	return active, nil
}

// SettingRepositoryStub stores settings in-memory.
type SettingRepositoryStub struct {
	Values map[string]string
	Err    error
}

// Get fetches a stored value or returns not found.
func (s *SettingRepositoryStub) Get(ctx context.Context, key string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if value, ok := s.Values[key]; ok {
		return value, nil
	}
	return "", domainErrors.ErrNotFound
}

// Set stores the value.
func (s *SettingRepositoryStub) Set(ctx context.Context, key, value string) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
	return nil
}

// PromoRepositoryStub stores promo codes in-memory.
type PromoRepositoryStub struct {
	CreateFn func(context.Context, *model.PromoCode) (*model.PromoCode, error)
	Promos   []model.PromoCode
}

// Create appends the promo unless the code already exists.
func (s *PromoRepositoryStub) Create(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, promo)
	}
	code := model.NormalizePromoCode(promo.Code)
	for _, p := range s.Promos {
		if p.Code == code {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	created := *promo
	created.Code = code
	created.ID = int64(len(s.Promos) + 1)
	s.Promos = append(s.Promos, created)
	return &created, nil
}

// GetByCode finds a stored promo by normalized code.
func (s *PromoRepositoryStub) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	normalized := model.NormalizePromoCode(code)
	for _, p := range s.Promos {
		if p.Code == normalized {
			promo := p
			return &promo, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored promos.
func (s *PromoRepositoryStub) List(ctx context.Context) ([]model.PromoCode, error) {
	return s.Promos, nil
}
