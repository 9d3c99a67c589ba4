package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/apperr"
	customerModel "github.com/deopraglabs/prysme/internal/customer/model"
	"github.com/deopraglabs/prysme/internal/database/dbtest"
	productModel "github.com/deopraglabs/prysme/internal/product/model"
	"github.com/deopraglabs/prysme/internal/quotation/model"
	"github.com/deopraglabs/prysme/internal/quotation/repository"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
)

type fixture struct {
	svc      Service
	db       *gorm.DB
	customer *customerModel.Customer
	seller   *userModel.User
	bread    *productModel.Product
	coffee   *productModel.Product
}

func setup(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop().Sugar()
	db := dbtest.Open(t,
		&userModel.User{},
		&customerModel.Customer{},
		&productModel.ProductCategory{},
		&productModel.Product{},
		&model.Quotation{},
		&model.Item{},
	)

	f := &fixture{
		svc: New(repository.New(db, logger), db, logger),
		db:  db,
		customer: &customerModel.Customer{
			CpfCnpj: "12345678000190",
			Name:    "Padaria Central",
			Email:   "contato@padaria.example",
		},
		seller: &userModel.User{
			FirstName:   "Ana",
			LastName:    "Souza",
			Email:       "ana@example.com",
			PhoneNumber: "11999990000",
			Roles:       []string{userModel.RoleSeller},
		},
		bread:  &productModel.Product{Name: "Bread", Price: decimal.RequireFromString("7.25"), Active: true},
		coffee: &productModel.Product{Name: "Coffee", Price: decimal.RequireFromString("30"), Active: true},
	}
	require.NoError(t, db.Create(f.customer).Error)
	require.NoError(t, db.Create(f.seller).Error)
	require.NoError(t, db.Create(f.bread).Error)
	require.NoError(t, db.Create(f.coffee).Error)
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (f *fixture) create(t *testing.T, items ...model.ItemRequest) *model.Quotation {
	t.Helper()
	q, err := f.svc.Create(context.Background(), &model.CreateQuotationRequest{
		CustomerID: f.customer.ID,
		SellerID:   f.seller.ID,
		Items:      items,
	})
	require.NoError(t, err)
	return q
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots product price", func(t *testing.T) {
		f := setup(t)
		custom := dec("6")

		q := f.create(t,
			model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("2")},
			model.ItemRequest{ProductID: f.coffee.ID, Quantity: dec("1"), UnitPrice: &custom},
		)

		assert.Equal(t, model.StatusOpen, q.BudgetStatus)
		assert.False(t, q.DateTime.IsZero())
		require.Len(t, q.Items, 2)
		assert.True(t, q.Items[0].UnitPrice.Equal(dec("7.25")))
		assert.True(t, q.Items[1].UnitPrice.Equal(dec("6")))
		assert.True(t, q.Total().Equal(dec("20.5")))

		require.NoError(t, f.db.Model(f.bread).Update("price", dec("9")).Error)
		found, err := f.svc.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.True(t, found.Items[0].UnitPrice.Equal(dec("7.25")))
	})

	t.Run("without items", func(t *testing.T) {
		f := setup(t)

		q := f.create(t)
		assert.Empty(t, q.Items)
	})

	t.Run("unknown references", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Create(ctx, &model.CreateQuotationRequest{CustomerID: 99, SellerID: f.seller.ID})
		assert.ErrorIs(t, err, customerModel.ErrCustomerNotFound)

		_, err = f.svc.Create(ctx, &model.CreateQuotationRequest{CustomerID: f.customer.ID, SellerID: 99})
		assert.ErrorIs(t, err, model.ErrSellerNotFound)

		_, err = f.svc.Create(ctx, &model.CreateQuotationRequest{
			CustomerID: f.customer.ID,
			SellerID:   f.seller.ID,
			Items:      []model.ItemRequest{{ProductID: 99, Quantity: dec("1")}},
		})
		assert.ErrorIs(t, err, productModel.ErrProductNotFound)

		all, err := f.svc.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("invalid items", func(t *testing.T) {
		f := setup(t)
		negative := dec("-1")

		_, err := f.svc.Create(ctx, &model.CreateQuotationRequest{
			CustomerID: f.customer.ID,
			SellerID:   f.seller.ID,
			Items: []model.ItemRequest{
				{ProductID: f.bread.ID, Quantity: dec("0")},
				{ProductID: f.bread.ID, Quantity: dec("-2"), UnitPrice: &negative},
			},
		})
		require.ErrorIs(t, err, apperr.ErrValidationFailed)
		assert.Equal(t, []string{MsgQuantityNotPositive, MsgUnitPriceNegative}, apperr.Violations(err))
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.create(t)
	f.create(t)

	seller := f.seller.ID
	mine, err := f.svc.List(ctx, &seller)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other := seller + 1
	none, err := f.svc.List(ctx, &other)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves forward only", func(t *testing.T) {
		f := setup(t)
		q := f.create(t)

		got, err := f.svc.ChangeStatus(ctx, q.ID, "quoted")
		require.NoError(t, err)
		assert.Equal(t, model.StatusQuoted, got.BudgetStatus)

		_, err = f.svc.ChangeStatus(ctx, q.ID, "OPEN")
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		assert.ErrorIs(t, err, apperr.ErrInvalidState)

		got, err = f.svc.ChangeStatus(ctx, q.ID, "CLOSED")
		require.NoError(t, err)
		assert.Equal(t, model.StatusClosed, got.BudgetStatus)

		_, err = f.svc.ChangeStatus(ctx, q.ID, "APPROVED")
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := setup(t)
		q := f.create(t)

		got, err := f.svc.ChangeStatus(ctx, q.ID, "OPEN")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOpen, got.BudgetStatus)
	})

	t.Run("terminal status cannot be left", func(t *testing.T) {
		f := setup(t)
		q := f.create(t)

		_, err := f.svc.ChangeStatus(ctx, q.ID, "REJECTED")
		require.NoError(t, err)

		_, err = f.svc.ChangeStatus(ctx, q.ID, "CLOSED")
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := setup(t)
		q := f.create(t)

		_, err := f.svc.ChangeStatus(ctx, q.ID, "PENDING")
		require.ErrorIs(t, err, apperr.ErrValidationFailed)
		assert.Equal(t, []string{"Status must be one of OPEN, QUOTED, APPROVED, REJECTED, CLOSED"}, apperr.Violations(err))
	})

	t.Run("missing quotation", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.ChangeStatus(ctx, 42, "QUOTED")
		assert.ErrorIs(t, err, model.ErrQuotationNotFound)
	})

	t.Run("concurrent changes never move backwards", func(t *testing.T) {
		f := setup(t)
		q := f.create(t)

		targets := []string{"QUOTED", "APPROVED", "QUOTED", "APPROVED", "QUOTED", "APPROVED"}
		var wg sync.WaitGroup
		for _, target := range targets {
			wg.Add(1)
			go func(target string) {
				defer wg.Done()
				_, err := f.svc.ChangeStatus(ctx, q.ID, target)
				if err != nil {
					assert.ErrorIs(t, err, model.ErrInvalidTransition)
				}
			}(target)
		}
		wg.Wait()

		found, err := f.svc.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, found.BudgetStatus)
	})
}

func TestService_Items(t *testing.T) {
	ctx := context.Background()

	t.Run("add update remove", func(t *testing.T) {
		f := setup(t)
		q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})

		item, err := f.svc.AddItem(ctx, q.ID, &model.ItemRequest{ID: 77, ProductID: f.coffee.ID, Quantity: dec("2")})
		require.NoError(t, err)
		assert.NotEqual(t, uint(77), item.ID)
		assert.True(t, item.UnitPrice.Equal(dec("30")))

		qty := dec("5")
		updated, err := f.svc.UpdateItem(ctx, q.ID, item.ID, &model.UpdateItemRequest{Quantity: &qty})
		require.NoError(t, err)
		assert.True(t, updated.Quantity.Equal(qty))
		assert.True(t, updated.UnitPrice.Equal(dec("30")))

		zero := dec("0")
		_, err = f.svc.UpdateItem(ctx, q.ID, item.ID, &model.UpdateItemRequest{Quantity: &zero})
		assert.Equal(t, []string{MsgQuantityNotPositive}, apperr.Violations(err))

		require.NoError(t, f.svc.RemoveItem(ctx, q.ID, item.ID))
		assert.ErrorIs(t, f.svc.RemoveItem(ctx, q.ID, item.ID), model.ErrItemNotFound)

		found, err := f.svc.GetByID(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, f.bread.ID, found.Items[0].ProductID)
	})

	t.Run("item of another quotation", func(t *testing.T) {
		f := setup(t)
		q := f.create(t)
		other := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})

		qty := dec("3")
		_, err := f.svc.UpdateItem(ctx, q.ID, other.Items[0].ID, &model.UpdateItemRequest{Quantity: &qty})
		assert.ErrorIs(t, err, model.ErrItemNotFound)
		assert.ErrorIs(t, f.svc.RemoveItem(ctx, q.ID, other.Items[0].ID), model.ErrItemNotFound)
	})

	t.Run("closed quotation rejects changes", func(t *testing.T) {
		f := setup(t)
		q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})
		_, err := f.svc.ChangeStatus(ctx, q.ID, "CLOSED")
		require.NoError(t, err)

		_, err = f.svc.AddItem(ctx, q.ID, &model.ItemRequest{ProductID: f.coffee.ID, Quantity: dec("1")})
		assert.ErrorIs(t, err, model.ErrQuotationClosed)
		assert.ErrorIs(t, f.svc.RemoveItem(ctx, q.ID, q.Items[0].ID), model.ErrQuotationClosed)
		_, err = f.svc.ReplaceItems(ctx, q.ID, nil)
		assert.ErrorIs(t, err, model.ErrQuotationClosed)

		found, err := f.svc.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Len(t, found.Items, 1)
	})

	t.Run("missing quotation", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.AddItem(ctx, 42, &model.ItemRequest{ProductID: f.coffee.ID, Quantity: dec("1")})
		assert.ErrorIs(t, err, model.ErrQuotationNotFound)
	})
}

func TestService_ReplaceItems(t *testing.T) {
	ctx := context.Background()

	t.Run("updates adds and removes orphans", func(t *testing.T) {
		f := setup(t)
		q := f.create(t,
			model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")},
			model.ItemRequest{ProductID: f.coffee.ID, Quantity: dec("1")},
		)
		kept := q.Items[0]

		got, err := f.svc.ReplaceItems(ctx, q.ID, []model.ItemRequest{
			{ID: kept.ID, ProductID: f.bread.ID, Quantity: dec("3")},
			{ProductID: f.coffee.ID, Quantity: dec("2")},
		})
		require.NoError(t, err)
		require.Len(t, got.Items, 2)
		assert.Equal(t, kept.ID, got.Items[0].ID)
		assert.True(t, got.Items[0].Quantity.Equal(dec("3")))
		assert.NotEqual(t, q.Items[1].ID, got.Items[1].ID)
		assert.True(t, got.Total().Equal(dec("81.75")))
	})

	t.Run("kept item keeps its price", func(t *testing.T) {
		f := setup(t)
		q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})
		require.NoError(t, f.db.Model(f.bread).Update("price", dec("9")).Error)

		got, err := f.svc.ReplaceItems(ctx, q.ID, []model.ItemRequest{
			{ID: q.Items[0].ID, ProductID: f.bread.ID, Quantity: dec("2")},
		})
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.True(t, got.Items[0].UnitPrice.Equal(dec("7.25")))
		assert.True(t, got.Items[0].Quantity.Equal(dec("2")))
	})

	t.Run("kept item with new product takes its price", func(t *testing.T) {
		f := setup(t)
		q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})

		got, err := f.svc.ReplaceItems(ctx, q.ID, []model.ItemRequest{
			{ID: q.Items[0].ID, ProductID: f.coffee.ID, Quantity: dec("1")},
		})
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, f.coffee.ID, got.Items[0].ProductID)
		assert.True(t, got.Items[0].UnitPrice.Equal(dec("30")))
	})

	t.Run("empty list clears items", func(t *testing.T) {
		f := setup(t)
		q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})

		got, err := f.svc.ReplaceItems(ctx, q.ID, []model.ItemRequest{})
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})

	t.Run("foreign item rolls back", func(t *testing.T) {
		f := setup(t)
		q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})
		other := f.create(t, model.ItemRequest{ProductID: f.coffee.ID, Quantity: dec("1")})

		_, err := f.svc.ReplaceItems(ctx, q.ID, []model.ItemRequest{
			{ProductID: f.coffee.ID, Quantity: dec("1")},
			{ID: other.Items[0].ID, ProductID: f.coffee.ID, Quantity: dec("9")},
		})
		assert.ErrorIs(t, err, model.ErrItemNotFound)

		found, err := f.svc.GetByID(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, q.Items[0].ID, found.Items[0].ID)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	q := f.create(t, model.ItemRequest{ProductID: f.bread.ID, Quantity: dec("1")})

	require.NoError(t, f.svc.Delete(ctx, q.ID))

	var items int64
	require.NoError(t, f.db.Model(&model.Item{}).Where("quotation_id = ?", q.ID).Count(&items).Error)
	assert.Zero(t, items)

	assert.ErrorIs(t, f.svc.Delete(ctx, q.ID), model.ErrQuotationNotFound)
}
