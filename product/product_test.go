package product_test

import (
	"testing"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := product.New(101, "Laptop", 1200, 5, "Electronics")

	assert.Equal(t, 101, p.ID())
	assert.Equal(t, "Laptop", p.Name())
	assert.Equal(t, 1200.0, p.Price())
	assert.Equal(t, 5, p.Quantity())
	assert.Equal(t, "Electronics", p.Category())
	assert.Empty(t, p.History())
}

func TestUpdatePrice(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		updates   []float64
		wantPrice float64
		want      []product.Change
	}{
		{
			name:      "single update",
			start:     800,
			updates:   []float64{750},
			wantPrice: 750,
			want:      []product.Change{{Old: 800, New: 750}},
		},
		{
			name:      "updates are appended in order",
			start:     100,
			updates:   []float64{120, 140, 90},
			wantPrice: 90,
			want: []product.Change{
				{Old: 100, New: 120},
				{Old: 120, New: 140},
				{Old: 140, New: 90},
			},
		},
		{
			name:      "negative and zero prices are accepted",
			start:     10,
			updates:   []float64{0, -5},
			wantPrice: -5,
			want: []product.Change{
				{Old: 10, New: 0},
				{Old: 0, New: -5},
			},
		},
		{
			name:      "same price is still recorded",
			start:     10,
			updates:   []float64{10},
			wantPrice: 10,
			want:      []product.Change{{Old: 10, New: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := product.New(1, "item", tt.start, 1, "misc")
			for _, u := range tt.updates {
				p.UpdatePrice(u)
			}

			assert.Equal(t, tt.wantPrice, p.Price())
			assert.Equal(t, tt.want, p.History())
		})
	}
}

func TestHistoryIsACopy(t *testing.T) {
	p := product.New(1, "item", 1, 1, "misc")
	p.UpdatePrice(2)

	h := p.History()
	require.Len(t, h, 1)
	h[0] = product.Change{Old: 99, New: 99}

	assert.Equal(t, []product.Change{{Old: 1, New: 2}}, p.History())
}

func TestSetQuantityDoesNotTouchHistory(t *testing.T) {
	p := product.New(102, "Phone", 800, 10, "Electronics")
	p.SetQuantity(-3)

	assert.Equal(t, -3, p.Quantity())
	assert.Empty(t, p.History())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		p    *product.Product
		want string
	}{
		{
			name: "whole price",
			p:    product.New(101, "Laptop", 1200, 5, "Electronics"),
			want: "Laptop (ID: 101) - $1200, Qty: 5, Category: Electronics",
		},
		{
			name: "fractional price",
			p:    product.New(7, "Cable", 9.99, 0, "Accessories"),
			want: "Cable (ID: 7) - $9.99, Qty: 0, Category: Accessories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestChangeString(t *testing.T) {
	assert.Equal(t, "120→140", product.Change{Old: 120, New: 140}.String())
	assert.Equal(t, "0.5→-1.25", product.Change{Old: 0.5, New: -1.25}.String())
}
