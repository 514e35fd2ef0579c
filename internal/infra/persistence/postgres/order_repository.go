package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/persistence/model"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("product_orders.id") }).
		Preload("Lines.Product").
		Preload("User").
		Preload("Address")
}

// Create inserts the order header. Lines are added with CreateLine.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicatePaymentID, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) CreateLine(ctx context.Context, line *entity.OrderLine) error {
	lineM := &model.ProductOrderModel{
		OrderID:   line.OrderID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(lineM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line")
	}

	line.ID = lineM.ID

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.preloaded(repo.db.WithContext(ctx)).First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ExistsByPaymentID always reads from the primary so a just-committed order is visible.
func (repo *orderRepository) ExistsByPaymentID(ctx context.Context, paymentID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.OrderModel{}).
		Where("payment_id = ?", paymentID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check payment id")
	}

	return count > 0, nil
}

func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx)
	if filter.MinDate != nil {
		query = query.Where("orders.created_at >= ?", *filter.MinDate)
	}
	if filter.MaxDate != nil {
		query = query.Where("orders.created_at <= ?", *filter.MaxDate)
	}

	return repo.find(query)
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).Where("orders.user_id = ?", userID))
}

func (repo *orderRepository) find(query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := repo.preloaded(query).Order("orders.id").Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// Delete removes the lines, then the header. Callers run it inside a transaction.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id).Delete(&model.ProductOrderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order lines")
	}

	result := db.Delete(&model.OrderModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:            orderM.ID,
		PaymentID:     orderM.PaymentID,
		PaymentMethod: orderM.PaymentMethod,
		UserID:        orderM.UserID,
		AddressID:     orderM.AddressID,
		NetPrice:      orderM.NetPrice,
		IVA:           orderM.IVA,
		Total:         orderM.Total,
		Profit:        orderM.Profit,
		CreatedAt:     orderM.CreatedAt,
	}
	if orderM.User != nil {
		order.User = toUserDomain(orderM.User)
	}
	if orderM.Address != nil {
		order.Address = toAddressDomain(orderM.Address)
	}

	order.Lines = make([]entity.OrderLine, 0, len(orderM.Lines))
	for _, lineM := range orderM.Lines {
		line := entity.OrderLine{
			ID:        lineM.ID,
			OrderID:   lineM.OrderID,
			ProductID: lineM.ProductID,
			Quantity:  lineM.Quantity,
		}
		if lineM.Product != nil {
			line.Product = toProductDomain(lineM.Product)
		}
		order.Lines = append(order.Lines, line)
	}

	return order
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:            order.ID,
		PaymentID:     order.PaymentID,
		PaymentMethod: order.PaymentMethod,
		UserID:        order.UserID,
		AddressID:     order.AddressID,
		NetPrice:      order.NetPrice,
		IVA:           order.IVA,
		Total:         order.Total,
		Profit:        order.Profit,
	}
}
