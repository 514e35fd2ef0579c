package impl

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	mockRepo "padelpoint/internal/mocks/repository"
	mockSvc "padelpoint/internal/mocks/service"
	"padelpoint/internal/usecase"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	productRepo *mockRepo.MockProductRepository
	gateway     *mockSvc.MockPaymentGateway
	publisher   *mockSvc.MockEventPublisher
	cache       *mockSvc.MockProductCache
	metrics     *mockSvc.MockOrderMetrics
}

func createTestOrderService(t *testing.T, cfg *config.Config) orderServiceFixtures {
	if cfg == nil {
		cfg = testConfig()
	}

	f := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		cache:       mockSvc.NewMockProductCache(t),
		metrics:     mockSvc.NewMockOrderMetrics(t),
	}
	f.service = NewOrderService(OrderServiceParams{
		TxManager:   f.txManager,
		OrderRepo:   f.orderRepo,
		UserRepo:    f.userRepo,
		AddressRepo: f.addressRepo,
		ProductRepo: f.productRepo,
		Gateway:     f.gateway,
		Publisher:   f.publisher,
		Cache:       f.cache,
		Metrics:     f.metrics,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return f
}

func racket() *entity.Product {
	return &entity.Product{ID: 1, Name: "Vertex", Price: 100, Cost: 50, Stock: 5, IsActive: true}
}

func balls() *entity.Product {
	return &entity.Product{ID: 2, Name: "Balls", Price: 50, Cost: 20, Stock: 3, IsActive: true}
}

func orderInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		UserID:    7,
		PaymentID: 999,
		Products: []entity.StockLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

// expectValidation stubs steps before the transaction for orderInput with an approved payment.
func (f orderServiceFixtures) expectValidation(ctx context.Context, products ...*entity.Product) {
	f.gateway.EXPECT().GetPayment(ctx, int64(999)).
		Return(&entity.PaymentInfo{ID: 999, Status: "approved"}, nil)
	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, IsActive: true}, nil)
	f.orderRepo.EXPECT().ExistsByPaymentID(ctx, int64(999)).Return(false, nil)

	found := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		found[p.ID] = p
	}
	f.productRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return(found, nil)
}

func TestOrderService_Create_PricesAndPersistsAtomically(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	f.expectValidation(ctx, racket(), balls())

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrders := mockRepo.NewMockOrderRepository(t)
			txProducts := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewOrderRepository().Return(txOrders)
			factory.EXPECT().NewProductRepository().Return(txProducts)

			txOrders.EXPECT().Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
				return o.NetPrice == 250 && o.IVA == 0.21 && o.Total == 302.5 && o.Profit == 130 &&
					o.PaymentMethod == "MP_TRANSFER" && o.AddressID == nil
			})).Run(func(_ context.Context, o *entity.Order) { o.ID = 40 }).Return(nil)

			txProducts.EXPECT().DecrementStock(ctx, int64(1), 2).Return(nil).Once()
			txProducts.EXPECT().DecrementStock(ctx, int64(2), 1).Return(nil).Once()
			txOrders.EXPECT().CreateLine(ctx, mock.MatchedBy(func(l *entity.OrderLine) bool {
				return l.OrderID == 40
			})).Return(nil).Times(2)
			txOrders.EXPECT().FindByID(ctx, int64(40)).Return(&entity.Order{
				ID: 40, UserID: 7, PaymentID: 999, PaymentMethod: "MP_TRANSFER",
				NetPrice: 250, IVA: 0.21, Total: 302.5, Profit: 130,
				Lines: []entity.OrderLine{{ID: 1, OrderID: 40, ProductID: 1, Quantity: 2}, {ID: 2, OrderID: 40, ProductID: 2, Quantity: 1}},
			}, nil)

			return fn(factory)
		})

	f.metrics.EXPECT().OrderCreated("MP_TRANSFER", 302.5).Return()
	f.cache.EXPECT().Invalidate(ctx, int64(1)).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, int64(2)).Return(nil)
	f.publisher.EXPECT().PublishOrderCreated(ctx, mock.MatchedBy(func(e *service.OrderCreatedEvent) bool {
		return e.OrderID == 40 && e.UserID == 7 && e.PaymentID == 999 && e.Total == 302.5
	})).Return(nil)

	order, err := f.service.Create(ctx, orderInput())

	require.NoError(t, err)
	assert.Equal(t, int64(40), order.ID)
	assert.Len(t, order.Lines, 2)
	assert.InDelta(t, 302.5, order.Total, 1e-9)
}

func TestOrderService_Create_PublishFailureDoesNotFailOrder(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	input := orderInput()
	input.Products = input.Products[:1]

	f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(&entity.PaymentInfo{ID: 999, Status: "approved"}, nil)
	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, IsActive: true}, nil)
	f.orderRepo.EXPECT().ExistsByPaymentID(ctx, int64(999)).Return(false, nil)
	f.productRepo.EXPECT().FindByIDs(ctx, []int64{1}).Return(map[int64]*entity.Product{1: racket()}, nil)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrders := mockRepo.NewMockOrderRepository(t)
			txProducts := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewOrderRepository().Return(txOrders)
			factory.EXPECT().NewProductRepository().Return(txProducts)
			txOrders.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, o *entity.Order) { o.ID = 41 }).Return(nil)
			txProducts.EXPECT().DecrementStock(ctx, int64(1), 2).Return(nil)
			txOrders.EXPECT().CreateLine(ctx, mock.Anything).Return(nil)
			txOrders.EXPECT().FindByID(ctx, int64(41)).Return(&entity.Order{ID: 41, PaymentMethod: "MP_TRANSFER", Total: 242}, nil)

			return fn(factory)
		})
	f.metrics.EXPECT().OrderCreated("MP_TRANSFER", 242.0).Return()
	f.cache.EXPECT().Invalidate(ctx, int64(1)).Return(errors.New("redis down"))
	f.publisher.EXPECT().PublishOrderCreated(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := f.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(41), order.ID)
}

func TestOrderService_Create_SentinelSkipsGateway(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	input := orderInput()
	input.PaymentID = 12345

	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrUserNotFound)
	f.metrics.EXPECT().OrderRejected("user_not_found").Return()

	_, err := f.service.Create(ctx, input)

	assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
	assert.Equal(t, "The user with id '7' was not found", messageOf(err))
}

func TestOrderService_Create_PaymentVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown payment", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(nil, service.ErrPaymentNotFound)
		f.metrics.EXPECT().OrderRejected("payment_not_found").Return()

		_, err := f.service.Create(ctx, orderInput())
		assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
		assert.Equal(t, "The payment order with id '999' was not found in mercado pago server", messageOf(err))
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(nil, service.ErrGatewayUnavailable)
		f.metrics.EXPECT().OrderRejected("payment_lookup_failed").Return()

		_, err := f.service.Create(ctx, orderInput())
		require.ErrorIs(t, err, domainerrors.ErrPaymentLookupFailed)
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
	})

	t.Run("pending payment passes unless approval is required", func(t *testing.T) {
		cfg := testConfig()
		cfg.Payment.RequireApproved = true
		f := createTestOrderService(t, cfg)
		f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(&entity.PaymentInfo{ID: 999, Status: "pending"}, nil)
		f.metrics.EXPECT().OrderRejected("payment_not_approved").Return()

		_, err := f.service.Create(ctx, orderInput())
		assert.Equal(t, "The payment with id '999' is not approved", messageOf(err))
	})
}

func TestOrderService_Create_AddressOwnedByAnotherUser(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	input := orderInput()
	addressID := int64(5)
	input.AddressID = &addressID

	f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(&entity.PaymentInfo{ID: 999, Status: "approved"}, nil)
	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, IsActive: true}, nil)
	// The address exists, but is linked to someone else.
	f.addressRepo.EXPECT().IsOwnedBy(ctx, int64(5), int64(7)).Return(false, nil)
	f.metrics.EXPECT().OrderRejected("address_not_owned").Return()

	_, err := f.service.Create(ctx, input)

	assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
	assert.Equal(t, "The address with id '5' was not register with the user or not exists", messageOf(err))
}

func TestOrderService_Create_DuplicatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected by the pre-check", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(&entity.PaymentInfo{ID: 999, Status: "approved"}, nil)
		f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, IsActive: true}, nil)
		f.orderRepo.EXPECT().ExistsByPaymentID(ctx, int64(999)).Return(true, nil)
		f.metrics.EXPECT().OrderRejected("duplicate_payment").Return()

		_, err := f.service.Create(ctx, orderInput())
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
		assert.Equal(t, "The payment id '999' already exists", messageOf(err))
	})

	t.Run("rejected by the unique constraint", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.expectValidation(ctx, racket(), balls())
		f.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				txOrders := mockRepo.NewMockOrderRepository(t)
				factory.EXPECT().NewOrderRepository().Return(txOrders)
				factory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
				txOrders.EXPECT().Create(ctx, mock.Anything).Return(errors.Wrap(repository.ErrDuplicatePaymentID, "23505"))

				return fn(factory)
			})
		f.metrics.EXPECT().OrderRejected("duplicate_payment").Return()

		_, err := f.service.Create(ctx, orderInput())
		assert.Equal(t, "The payment id '999' already exists", messageOf(err))
	})
}

func TestOrderService_Create_PricingPassRejections(t *testing.T) {
	ctx := context.Background()

	inactive := balls()
	inactive.IsActive = false
	scarce := balls()
	scarce.Stock = 0

	tests := []struct {
		name     string
		products []*entity.Product
		reason   string
		code     int
		message  string
	}{
		{"missing product", []*entity.Product{racket()}, "product_not_found", http.StatusNotFound, "The product with id '2' was not found"},
		{"inactive product", []*entity.Product{racket(), inactive}, "product_inactive", http.StatusBadRequest, "The product with id '2' is not active (deleted)"},
		{"not enough stock", []*entity.Product{racket(), scarce}, "insufficient_stock", http.StatusBadRequest, "The product with id '2' not have many stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t, nil)
			f.expectValidation(ctx, tt.products...)
			f.metrics.EXPECT().OrderRejected(tt.reason).Return()

			_, err := f.service.Create(ctx, orderInput())

			assert.Equal(t, tt.code, httpCodeOf(err))
			assert.Equal(t, tt.message, messageOf(err))
		})
	}
}

func TestOrderService_Create_ConcurrentStockLossRollsBack(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	f.expectValidation(ctx, racket(), balls())

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrders := mockRepo.NewMockOrderRepository(t)
			txProducts := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewOrderRepository().Return(txOrders)
			factory.EXPECT().NewProductRepository().Return(txProducts)

			txOrders.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, o *entity.Order) { o.ID = 40 }).Return(nil)
			txProducts.EXPECT().DecrementStock(ctx, int64(1), 2).Return(nil)
			txOrders.EXPECT().CreateLine(ctx, mock.Anything).Return(nil).Once()
			// Another order took the last unit between the pricing pass and the decrement.
			txProducts.EXPECT().DecrementStock(ctx, int64(2), 1).Return(repository.ErrInsufficientStock)

			return fn(factory)
		})
	f.metrics.EXPECT().OrderRejected("insufficient_stock").Return()

	_, err := f.service.Create(ctx, orderInput())

	assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
	assert.Equal(t, "The product with id '2' not have many stock", messageOf(err))
}

func TestOrderService_Create_TaxRate(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.expectValidation(ctx, racket(), balls())
		f.metrics.EXPECT().OrderRejected("invalid_iva").Return()

		input := orderInput()
		iva := 1.5
		input.IVA = &iva

		_, err := f.service.Create(ctx, input)
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
	})

	t.Run("zero override is rejected", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.expectValidation(ctx, racket(), balls())
		f.metrics.EXPECT().OrderRejected("invalid_iva").Return()

		input := orderInput()
		zero := 0.0
		input.IVA = &zero

		_, err := f.service.Create(ctx, input)
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
		assert.Equal(t, "The IVA must be a positive value not greater than 1", messageOf(err))
	})
}

func TestOrderService_Create_DeactivatedUser(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()

	f.gateway.EXPECT().GetPayment(ctx, int64(999)).Return(&entity.PaymentInfo{ID: 999, Status: "approved"}, nil)
	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, IsActive: false}, nil)
	f.metrics.EXPECT().OrderRejected("user_not_found").Return()

	_, err := f.service.Create(ctx, orderInput())

	assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
	assert.Equal(t, "The user with id '7' was not found", messageOf(err))
}

func TestOrderService_Create_UnexpectedTransactionFailure(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	f.expectValidation(ctx, racket(), balls())

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset by peer"))
	f.metrics.EXPECT().OrderRejected("persistence").Return()

	order, err := f.service.Create(ctx, orderInput())

	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
	assert.Equal(t, "Error in the creation of a new order", messageOf(err))
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "TRANSACTION_FAILED", appErr.ErrorCode())
}

func TestOrderService_FindByUser_OwnershipCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("user reading another user's orders", func(t *testing.T) {
		f := createTestOrderService(t, nil)

		_, err := f.service.FindByUser(ctx, userCaller(7), 8)
		assert.Equal(t, http.StatusUnauthorized, httpCodeOf(err))
		assert.Equal(t, "User ID '8' does not match the token ID", messageOf(err))
	})

	t.Run("admin reads any user's orders", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.orderRepo.EXPECT().ListByUser(ctx, int64(8)).Return([]*entity.Order{{ID: 1}}, nil)

		orders, err := f.service.FindByUser(ctx, adminCaller(1), 8)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestOrderService_FindOne_NotFound(t *testing.T) {
	f := createTestOrderService(t, nil)
	ctx := context.Background()
	f.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.FindOne(ctx, adminCaller(1), 3)

	assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
	assert.Equal(t, "The order with id '3' was not found", messageOf(err))
}

func TestOrderService_FindOne_OwnershipCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("user reading another user's order", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Order{ID: 3, UserID: 8}, nil)

		order, err := f.service.FindOne(ctx, userCaller(7), 3)
		assert.Nil(t, order)
		assert.Equal(t, http.StatusUnauthorized, httpCodeOf(err))
		assert.Equal(t, "User ID '8' does not match the token ID", messageOf(err))
	})

	t.Run("user reading their own order", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Order{ID: 3, UserID: 7}, nil)

		order, err := f.service.FindOne(ctx, userCaller(7), 3)
		require.NoError(t, err)
		assert.EqualValues(t, 3, order.ID)
	})

	t.Run("admin reads any order", func(t *testing.T) {
		f := createTestOrderService(t, nil)
		f.orderRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Order{ID: 3, UserID: 8}, nil)

		order, err := f.service.FindOne(ctx, adminCaller(1), 3)
		require.NoError(t, err)
		assert.EqualValues(t, 8, order.UserID)
	})
}
