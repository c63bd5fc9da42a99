package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
)

func TestCart(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		var c domain.Cart
		assert.Zero(t, c.Total())
		assert.Zero(t, c.Len())
		assert.Empty(t, c.Items())
	})

	t.Run("AddAccumulatesTotal", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})
		c.Add(domain.Product{ID: "2", Price: 15.5})

		assert.Equal(t, 25.5, c.Total())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("UnpricedEntryContributesZero", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})
		c.Add(domain.Product{ID: "2"})

		assert.Equal(t, float64(10), c.Total())
	})

	t.Run("DuplicateAddsAreIndependentEntries", func(t *testing.T) {
		var c domain.Cart
		p := domain.Product{ID: "1", Price: 10}
		c.Add(p)
		c.Add(p)

		assert.Equal(t, 2, c.Len())
		assert.Equal(t, float64(20), c.Total())
	})

	t.Run("RemoveAtShiftsEntries", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})
		c.Add(domain.Product{ID: "2", Price: 15.5})

		assert.True(t, c.RemoveAt(0))
		items := c.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID)
	})

	t.Run("RemoveAtOutOfBoundsIsNoOp", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})

		assert.False(t, c.RemoveAt(-1))
		assert.False(t, c.RemoveAt(1))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("AddRemoveLeavesEmpty", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})

		assert.True(t, c.RemoveAt(0))
		assert.Zero(t, c.Total())
		assert.Zero(t, c.Len())
	})

	t.Run("ClearEmpties", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})
		c.Clear()

		assert.Zero(t, c.Len())
	})

	t.Run("ItemsIsACopy", func(t *testing.T) {
		var c domain.Cart
		c.Add(domain.Product{ID: "1", Price: 10})

		items := c.Items()
		items[0].ID = "mutated"

		assert.Equal(t, "1", c.Items()[0].ID)
	})
}
