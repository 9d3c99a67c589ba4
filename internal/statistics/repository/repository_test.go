package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/database/dbtest"
	quotationModel "github.com/deopraglabs/prysme/internal/quotation/model"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
)

func setupTestDB(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	db := dbtest.Open(t, &userModel.User{}, &quotationModel.Quotation{}, &quotationModel.Item{})
	return db, New(db, zap.NewNop().Sugar())
}

func createUser(t *testing.T, db *gorm.DB, email string, roles ...string) *userModel.User {
	t.Helper()
	u := &userModel.User{FirstName: "Ana", LastName: "Souza", Email: email, PhoneNumber: email, Roles: roles}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createQuotation(t *testing.T, db *gorm.DB, sellerID uint, status quotationModel.Status, prices ...string) {
	t.Helper()
	q := &quotationModel.Quotation{CustomerID: 1, SellerID: sellerID, DateTime: time.Now(), BudgetStatus: status}
	for i, price := range prices {
		q.Items = append(q.Items, quotationModel.Item{
			ProductID: uint(i + 1),
			Quantity:  decimal.NewFromInt(2),
			UnitPrice: decimal.RequireFromString(price),
		})
	}
	require.NoError(t, db.Create(q).Error)
}

func TestGetSellersStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		_, repo := setupTestDB(t)

		stats, err := repo.GetSellersStatistics(ctx)
		require.NoError(t, err)
		assert.NotNil(t, stats)
		assert.Empty(t, stats)
	})

	t.Run("counts and amounts per seller", func(t *testing.T) {
		db, repo := setupTestDB(t)
		ana := createUser(t, db, "ana@example.com", userModel.RoleSeller)
		bia := createUser(t, db, "bia@example.com", userModel.RoleSeller, userModel.RoleManager)
		createUser(t, db, "admin@example.com", userModel.RoleAdmin)
		gone := createUser(t, db, "gone@example.com", userModel.RoleSeller)
		require.NoError(t, db.Model(gone).Update("deleted", true).Error)

		createQuotation(t, db, bia.ID, quotationModel.StatusApproved, "7.25", "1")
		createQuotation(t, db, bia.ID, quotationModel.StatusOpen, "10")
		createQuotation(t, db, bia.ID, quotationModel.StatusOpen)

		stats, err := repo.GetSellersStatistics(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, bia.ID, stats[0].SellerID)
		assert.Equal(t, int64(3), stats[0].QuotationCount)
		assert.Equal(t, int64(1), stats[0].ApprovedCount)
		assert.True(t, stats[0].QuotedAmount.Equal(decimal.RequireFromString("36.5")), stats[0].QuotedAmount.String())
		assert.True(t, stats[0].ApprovedAmount.Equal(decimal.RequireFromString("16.5")), stats[0].ApprovedAmount.String())

		assert.Equal(t, ana.ID, stats[1].SellerID)
		assert.Zero(t, stats[1].QuotationCount)
		assert.True(t, stats[1].QuotedAmount.IsZero())
	})
}

func TestGetStatusCounts(t *testing.T) {
	ctx := context.Background()
	db, repo := setupTestDB(t)

	counts, err := repo.GetStatusCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)

	createQuotation(t, db, 1, quotationModel.StatusOpen)
	createQuotation(t, db, 1, quotationModel.StatusOpen)
	createQuotation(t, db, 2, quotationModel.StatusClosed)

	counts, err = repo.GetStatusCounts(ctx)
	require.NoError(t, err)

	byStatus := make(map[string]int64)
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, map[string]int64{"OPEN": 2, "CLOSED": 1}, byStatus)
}

func TestGetQuotedAmount(t *testing.T) {
	ctx := context.Background()
	db, repo := setupTestDB(t)

	amount, err := repo.GetQuotedAmount(ctx)
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	createQuotation(t, db, 1, quotationModel.StatusOpen, "7.25", "0.5")

	amount, err = repo.GetQuotedAmount(ctx)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("15.5")), amount.String())
}
