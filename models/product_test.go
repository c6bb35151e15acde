package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	original := 32.90
	p := Product{Price: 24.90, OriginalPrice: &original}

	// round((32.90-24.90)/32.90*100) = 24, measured against the original price
	assert.Equal(t, 24, p.DiscountPercent())
}

func TestDiscountPercentWithoutOriginalPrice(t *testing.T) {
	p := Product{Price: 24.90}
	assert.Equal(t, 0, p.DiscountPercent())

	// Original price at or below the current price means no discount badge.
	same := 24.90
	p.OriginalPrice = &same
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestApplyPatchChangesOnlySetFields(t *testing.T) {
	products := SeedProducts()
	before := products[0]
	p := products[0]

	stock := 5
	p.ApplyPatch(ProductPatch{Stock: &stock})

	assert.Equal(t, 5, p.Stock)

	p.Stock = before.Stock
	assert.Equal(t, before, p)
}

func TestApplyPatchMultipleFields(t *testing.T) {
	p := SeedProducts()[1]

	name := "Pastilha de Freio Traseira"
	price := 99.90
	tags := []string{"pastilha", "freio"}
	p.ApplyPatch(ProductPatch{Name: &name, Price: &price, Tags: &tags})

	assert.Equal(t, "Pastilha de Freio Traseira", p.Name)
	assert.Equal(t, 99.90, p.Price)
	assert.Equal(t, []string{"pastilha", "freio"}, p.Tags)
	assert.Equal(t, "BRK-205-VW", p.Code)
}

func TestSeedProductsReturnsFreshCopies(t *testing.T) {
	a := SeedProducts()
	a[0].Name = "mutated"
	a[0].Specifications["Rosca"] = "mutated"

	b := SeedProducts()
	assert.Equal(t, "Filtro de Óleo Tecfil", b[0].Name)
	assert.Equal(t, "M20 x 1,5", b[0].Specifications["Rosca"])
}
