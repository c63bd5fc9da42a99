package domain

import "slices"

// A Cart is an ordered sequence of product snapshots. Adding the same
// product twice yields two independent entries; removal is by position.
// Carts are never persisted.
type Cart struct {
	items []Product
}

func (c *Cart) Add(p Product) {
	c.items = append(c.items, p)
}

// RemoveAt removes the entry at index. Out-of-bounds indexes are a no-op.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = slices.Delete(c.items, index, index+1)
	return true
}

func (c *Cart) Total() float64 {
	var total float64
	for _, p := range c.items {
		total += p.Price
	}
	return total
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []Product {
	return slices.Clone(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}
