package impl

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"padelpoint/config"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/constants"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"
)

// Rejection reasons reported to OrderMetrics.
const (
	rejectPaymentNotFound    = "payment_not_found"
	rejectPaymentLookup      = "payment_lookup_failed"
	rejectPaymentNotApproved = "payment_not_approved"
	rejectUserNotFound       = "user_not_found"
	rejectAddressNotOwned    = "address_not_owned"
	rejectDuplicatePayment   = "duplicate_payment"
	rejectProductNotFound    = "product_not_found"
	rejectProductInactive    = "product_inactive"
	rejectInsufficientStock  = "insufficient_stock"
	rejectInvalidIVA         = "invalid_iva"
	rejectPersistence        = "persistence"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	productRepo repository.ProductRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	cache       service.ProductCache
	metrics     service.OrderMetrics
	paymentCfg  *config.PaymentConfig
	defaultIVA  float64
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	ProductRepo repository.ProductRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Cache       service.ProductCache
	Metrics     service.OrderMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		productRepo: params.ProductRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		cache:       params.Cache,
		metrics:     params.Metrics,
		paymentCfg:  params.Config.Payment,
		defaultIVA:  params.Config.Order.DefaultIVA,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return loggerFor(ctx, srv.logger)
}

func (srv *orderService) reject(ctx context.Context, reason string, err error) error {
	srv.metrics.OrderRejected(reason)
	srv.log(ctx).Info("Order rejected", slog.String("reason", reason), slog.Any("error", err))

	return err
}

// Create validates the payment, buyer, address and lines without writing, then persists the
// header, stock decrements and lines in one transaction.
func (srv *orderService) Create(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.PaymentMethod == "" {
		input.PaymentMethod = constants.DefaultPaymentMethod
	}

	if reason, err := srv.verifyPayment(ctx, input.PaymentID); err != nil {
		return nil, srv.reject(ctx, reason, err)
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, srv.reject(ctx, rejectUserNotFound, domainerrors.UserNotFound(input.UserID))
		}

		return nil, internalError(err, fmt.Sprintf("Error finding the user with id '%d'", input.UserID))
	}
	if !user.IsActive {
		return nil, srv.reject(ctx, rejectUserNotFound, domainerrors.UserNotFound(input.UserID))
	}

	if input.AddressID != nil {
		if _, err := ownedAddress(ctx, srv.addressRepo, *input.AddressID, input.UserID); err != nil {
			return nil, srv.reject(ctx, rejectAddressNotOwned, err)
		}
	}

	exists, err := srv.orderRepo.ExistsByPaymentID(ctx, input.PaymentID)
	if err != nil {
		return nil, internalError(err, "Error checking the payment id")
	}
	if exists {
		return nil, srv.reject(ctx, rejectDuplicatePayment, domainerrors.DuplicatePayment(input.PaymentID))
	}

	priced, reason, err := srv.priceLines(ctx, input.Products)
	if err != nil {
		if reason == "" {
			return nil, err
		}

		return nil, srv.reject(ctx, reason, err)
	}

	iva := srv.defaultIVA
	if input.IVA != nil {
		iva = *input.IVA
	}
	if iva <= 0 || iva > 1 {
		return nil, srv.reject(ctx, rejectInvalidIVA, domainerrors.NewBadRequest("The IVA must be a positive value not greater than 1"))
	}
	totals := entity.PriceOrder(priced, iva)

	order := &entity.Order{
		PaymentID:     input.PaymentID,
		PaymentMethod: input.PaymentMethod,
		UserID:        input.UserID,
		AddressID:     input.AddressID,
		NetPrice:      totals.NetPrice,
		IVA:           totals.IVA,
		Total:         totals.Total,
		Profit:        totals.Profit,
	}

	var created *entity.Order
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.NewOrderRepository()
		products := factory.NewProductRepository()

		if err := orders.Create(ctx, order); err != nil {
			return err
		}

		for _, line := range input.Products {
			if err := products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return &stockShortage{productID: line.ProductID}
				}

				return err
			}

			err := orders.CreateLine(ctx, &entity.OrderLine{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
			if err != nil {
				return err
			}
		}

		reloaded, err := orders.FindByID(ctx, order.ID)
		if err != nil {
			return err
		}
		created = reloaded

		return nil
	})
	if err != nil {
		return nil, srv.reject(ctx, persistenceReason(err), srv.mapTxError(ctx, input.PaymentID, err))
	}

	srv.afterCommit(ctx, created, input.Products)

	return created, nil
}

// verifyPayment confirms the payment id resolves at the gateway. The sentinel id skips the lookup.
func (srv *orderService) verifyPayment(ctx context.Context, paymentID int64) (string, error) {
	if paymentID == srv.paymentCfg.SentinelPaymentID {
		return "", nil
	}

	payment, err := srv.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return rejectPaymentNotFound, domainerrors.NewNotFound(
				"The payment order with id '%d' was not found in mercado pago server", paymentID)
		}

		return rejectPaymentLookup, errors.Wrap(domainerrors.ErrPaymentLookupFailed, err.Error())
	}

	if srv.paymentCfg.RequireApproved && payment.Status != constants.PaymentStatusApproved {
		return rejectPaymentNotApproved, domainerrors.NewBadRequest("The payment with id '%d' is not approved", paymentID)
	}

	return "", nil
}

// priceLines loads every product once and checks it can be sold in the requested quantity.
// A non-empty reason marks a business rejection.
func (srv *orderService) priceLines(ctx context.Context, lines []entity.StockLine) ([]entity.PricedLine, string, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, "", internalError(err, "Error loading the products of the order")
	}

	priced := make([]entity.PricedLine, 0, len(lines))
	for _, line := range lines {
		product, ok := products[line.ProductID]
		switch {
		case !ok:
			return nil, rejectProductNotFound, domainerrors.ProductNotFound(line.ProductID)
		case !product.IsActive:
			return nil, rejectProductInactive, domainerrors.ProductInactive(line.ProductID)
		case product.Stock < line.Quantity:
			return nil, rejectInsufficientStock, domainerrors.ProductLowStock(line.ProductID)
		}

		priced = append(priced, entity.PricedLine{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Cost:      product.Cost,
		})
	}

	return priced, "", nil
}

func persistenceReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrDuplicatePaymentID):
		return rejectDuplicatePayment
	case errors.Is(err, repository.ErrInsufficientStock):
		return rejectInsufficientStock
	default:
		return rejectPersistence
	}
}

// stockShortage names the line whose conditional decrement matched no row.
type stockShortage struct {
	productID int64
}

func (s *stockShortage) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", s.productID)
}

func (s *stockShortage) Unwrap() error {
	return repository.ErrInsufficientStock
}

func (srv *orderService) mapTxError(ctx context.Context, paymentID int64, err error) error {
	if errors.Is(err, repository.ErrDuplicatePaymentID) {
		// Another order with this payment id committed after the pre-check.
		return domainerrors.DuplicatePayment(paymentID)
	}
	if shortage, ok := errors.AsType[*stockShortage](err); ok {
		return domainerrors.ProductLowStock(shortage.productID)
	}

	srv.log(ctx).Error("Order transaction failed", slog.Int64("payment_id", paymentID), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
}

// afterCommit runs the best-effort side effects of a committed order. Failures are only logged.
func (srv *orderService) afterCommit(ctx context.Context, order *entity.Order, lines []entity.StockLine) {
	srv.metrics.OrderCreated(order.PaymentMethod, order.Total)

	for _, line := range lines {
		if err := srv.cache.Invalidate(ctx, line.ProductID); err != nil {
			srv.log(ctx).Warn("Failed to invalidate product cache", slog.Int64("product_id", line.ProductID), slog.Any("error", err))
		}
	}

	event := &service.OrderCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID,
		UserID:    order.UserID,
		PaymentID: order.PaymentID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	if err := srv.publisher.PublishOrderCreated(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order created event",
			slog.Int64("order_id", order.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("payment_id", order.PaymentID),
		slog.Float64("total", order.Total),
	)
}

func (srv *orderService) FindAll(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, internalError(err, "Error finding the orders")
	}

	return orders, nil
}

func (srv *orderService) FindByUser(ctx context.Context, caller *entity.TokenPayload, userID int64) ([]*entity.Order, error) {
	if err := ensureSelfOrAdmin(caller, userID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError(err, "Error finding the orders of the user")
	}

	return orders, nil
}

// FindOne lets a user read only their own orders.
func (srv *orderService) FindOne(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureSelfOrAdmin(caller, order.UserID); err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *orderService) findOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.NewNotFound("The order with id '%d' was not found", id)
		}

		return nil, internalError(err, "Error finding the order")
	}

	return order, nil
}

func (srv *orderService) Remove(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return nil, internalError(err, fmt.Sprintf("Error deleting the order with id '%d'", id))
	}

	srv.log(ctx).Info("Order deleted", slog.Int64("order_id", id))

	return order, nil
}
