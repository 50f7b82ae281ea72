// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 280000}
	assert.Equal(t, int64(280000), p.EffectivePrice())
	assert.False(t, p.IsOnSale())

	p.SalePrice = 245000
	assert.Equal(t, int64(245000), p.EffectivePrice())
	assert.True(t, p.IsOnSale())
}

func TestAfterFindPopulatesComputedPricing(t *testing.T) {
	p := Product{Price: 280000, SalePrice: 245000}
	require.NoError(t, p.AfterFind(nil))
	assert.Equal(t, int64(245000), p.DisplayPrice)
	assert.True(t, p.OnSale)

	regular := Product{Price: 195000}
	require.NoError(t, regular.AfterFind(nil))
	assert.Equal(t, int64(195000), regular.DisplayPrice)
	assert.False(t, regular.OnSale)
}

func TestDimensionAt(t *testing.T) {
	p := Product{
		Dimensions: []ProductDimension{
			{Label: "70cm", Price: 48000},
			{Label: "80cm", Price: 52000},
		},
	}

	first := p.DimensionAt(0)
	require.NotNil(t, first)
	assert.Equal(t, "70cm", first.Label)

	assert.Nil(t, p.DimensionAt(-1))
	assert.Nil(t, p.DimensionAt(2))
}
