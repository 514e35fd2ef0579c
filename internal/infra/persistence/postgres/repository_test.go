package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would open its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	ctx := context.Background()

	role, err := NewRoleRepository(db).EnsureExists(ctx, entity.RoleNameUser)
	require.NoError(t, err)

	user := &entity.User{
		Name:     "Ana",
		Surname:  "Perez",
		Username: username,
		Email:    username + "@padel.test",
		Method:   entity.LoginMethodLocal,
		IsActive: true,
		Roles:    []entity.Role{*role},
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:     "Bullpadel Vertex",
		Price:    100,
		Cost:     60,
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func stockOf(t *testing.T, db *gorm.DB, productID int64) int {
	t.Helper()

	product, err := NewProductRepository(db).FindByID(context.Background(), productID)
	require.NoError(t, err)

	return product.Stock
}

func TestProductRepository_DecrementStockBoundary(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("quantity equal to stock empties it", func(t *testing.T) {
		product := seedProduct(t, db, 3)

		require.NoError(t, repo.DecrementStock(ctx, product.ID, 3))
		assert.Equal(t, 0, stockOf(t, db, product.ID))
	})

	t.Run("quantity above stock is rejected and stock is unchanged", func(t *testing.T) {
		product := seedProduct(t, db, 3)

		err := repo.DecrementStock(ctx, product.ID, 4)
		require.ErrorIs(t, err, repository.ErrInsufficientStock)
		assert.Equal(t, 3, stockOf(t, db, product.ID))
	})

	t.Run("inactive product is never decremented", func(t *testing.T) {
		product := seedProduct(t, db, 5)
		require.NoError(t, repo.Deactivate(ctx, product.ID))

		err := repo.DecrementStock(ctx, product.ID, 1)
		require.ErrorIs(t, err, repository.ErrInsufficientStock)

		var stock int
		require.NoError(t, db.Table("products").Select("stock").Where("id = ?", product.ID).Scan(&stock).Error)
		assert.Equal(t, 5, stock)
	})
}

func TestOrderRepository_DuplicatePaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "ana")

	first := &entity.Order{PaymentID: 777, PaymentMethod: "MP_TRANSFER", UserID: user.ID, NetPrice: 100, IVA: 0.21, Total: 121, Profit: 40}
	require.NoError(t, repo.Create(ctx, first))

	exists, err := repo.ExistsByPaymentID(ctx, 777)
	require.NoError(t, err)
	assert.True(t, exists)

	second := &entity.Order{PaymentID: 777, PaymentMethod: "MP_TRANSFER", UserID: user.ID, NetPrice: 50, IVA: 0.21, Total: 60.5, Profit: 10}
	err = repo.Create(ctx, second)
	require.ErrorIs(t, err, repository.ErrDuplicatePaymentID)

	orders, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestTransactionManager_RollsBackOnLineFailure(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "ana")
	plenty := seedProduct(t, db, 10)
	scarce := seedProduct(t, db, 1)

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.NewOrderRepository()
		products := factory.NewProductRepository()

		order := &entity.Order{PaymentID: 9, PaymentMethod: "MP_TRANSFER", UserID: user.ID, NetPrice: 300, IVA: 0.21, Total: 363, Profit: 120}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}

		for _, line := range []entity.StockLine{{ProductID: plenty.ID, Quantity: 2}, {ProductID: scarce.ID, Quantity: 2}} {
			if err := products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
			if err := orders.CreateLine(ctx, &entity.OrderLine{OrderID: order.ID, ProductID: line.ProductID, Quantity: line.Quantity}); err != nil {
				return err
			}
		}

		return nil
	})
	require.True(t, errors.Is(err, repository.ErrInsufficientStock))

	exists, err := NewOrderRepository(db).ExistsByPaymentID(ctx, 9)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 10, stockOf(t, db, plenty.ID))
	assert.Equal(t, 1, stockOf(t, db, scarce.ID))
}

func TestOrderRepository_FindByIDLoadsLines(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "ana")
	product := seedProduct(t, db, 4)
	repo := NewOrderRepository(db)

	order := &entity.Order{PaymentID: 55, PaymentMethod: "MP_TRANSFER", UserID: user.ID, NetPrice: 200, IVA: 0.21, Total: 242, Profit: 80}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.CreateLine(ctx, &entity.OrderLine{OrderID: order.ID, ProductID: product.ID, Quantity: 2}))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, 2, found.Lines[0].Quantity)
	require.NotNil(t, found.Lines[0].Product)
	assert.Equal(t, product.Name, found.Lines[0].Product.Name)
	require.NotNil(t, found.User)
	assert.Equal(t, "ana", found.User.Username)

	require.NoError(t, repo.Delete(ctx, order.ID))
	_, err = repo.FindByID(ctx, order.ID)
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestAddressRepository_Ownership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")
	repo := NewAddressRepository(db)

	address := &entity.Address{PostalCode: "1900", Street: "Calle 7", Number: "1234"}
	require.NoError(t, repo.Create(ctx, owner.ID, address))

	owned, err := repo.IsOwnedBy(ctx, address.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = repo.IsOwnedBy(ctx, address.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, owned)

	addresses, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Calle 7", addresses[0].Street)
}

func TestCatalogRepository_UniqueNames(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	brand := &entity.CatalogItem{Name: "Bullpadel"}
	require.NoError(t, repo.Create(ctx, entity.CatalogBrand, brand))
	assert.NotZero(t, brand.ID)

	err := repo.Create(ctx, entity.CatalogBrand, &entity.CatalogItem{Name: "Bullpadel"})
	require.ErrorIs(t, err, repository.ErrCatalogNameTaken)

	// Same name in a different table is fine.
	require.NoError(t, repo.Create(ctx, entity.CatalogSupplier, &entity.CatalogItem{Name: "Bullpadel"}))

	_, err = repo.FindByID(ctx, entity.CatalogProductType, 99)
	require.ErrorIs(t, err, repository.ErrCatalogItemNotFound)
}

func TestUserRepository_CreateConflict(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedUser(t, db, "ana")

	err := NewUserRepository(db).Create(ctx, &entity.User{
		Name:     "Ana",
		Surname:  "Gomez",
		Username: "ana",
		Email:    "other@padel.test",
		Method:   entity.LoginMethodLocal,
		IsActive: true,
	})
	require.ErrorIs(t, err, repository.ErrUserConflict)

	found, err := NewUserRepository(db).FindByLogin(ctx, "ana@padel.test")
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleNameUser}, found.RoleNames())
}

func TestUserRepository_FindByIDSkipsDeactivated(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "ana")

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)

	require.NoError(t, repo.Deactivate(ctx, user.ID))

	_, err = repo.FindByID(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	// Username and email stay reserved after deactivation.
	reserved, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.False(t, reserved.IsActive)
}
