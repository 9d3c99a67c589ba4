package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProductRequest_ToProduct(t *testing.T) {
	t.Run("decodes numbers and strings", func(t *testing.T) {
		var req SaveProductRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":" Pão ","price":"12.50","stock":3}`), &req))

		p := req.ToProduct()

		assert.Equal(t, "Pão", p.Name)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("12.5")))
		assert.True(t, p.Stock.Equal(decimal.NewFromInt(3)))
		assert.True(t, p.Active)
		assert.Nil(t, p.CategoryID)
	})

	t.Run("explicit inactive", func(t *testing.T) {
		inactive := false
		p := (&SaveProductRequest{Active: &inactive}).ToProduct()

		assert.False(t, p.Active)
		assert.True(t, p.Price.IsZero())
	})
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "products", Product{}.TableName())
	assert.Equal(t, "product_categories", ProductCategory{}.TableName())
}
