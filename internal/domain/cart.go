package domain

import (
	"encoding/json"
)

// Cart holds at most one line per product, in the order products were first
// added. The zero value is an empty cart ready to use.
type Cart struct {
	items []CartItem
	index map[ID]int
}

// Add appends item, or increases the quantity of the existing line for the
// same product. Price, name and image are refreshed from item.
func (c *Cart) Add(item CartItem) {
	item.Quantity = ClampQuantity(item.Quantity)
	if c.index == nil {
		c.reindex()
	}
	if i, ok := c.index[item.ProductID]; ok {
		item.Quantity += c.items[i].Quantity
		c.items[i] = item
		return
	}
	c.index[item.ProductID] = len(c.items)
	c.items = append(c.items, item)
}

// Remove drops the line for productID. It reports whether a line existed.
func (c *Cart) Remove(productID ID) bool {
	if c.index == nil {
		c.reindex()
	}
	i, ok := c.index[productID]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reindex()
	return true
}

// Subtract takes the quantities in lines out of the cart. Lines that reach
// zero are dropped; products not in the cart are ignored.
func (c *Cart) Subtract(lines []CartItem) {
	if c.index == nil {
		c.reindex()
	}
	for _, line := range lines {
		i, ok := c.index[line.ProductID]
		if !ok {
			continue
		}
		c.items[i].Quantity -= line.Quantity
	}
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.reindex()
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = map[ID]int{}
}

func (c *Cart) Len() int { return len(c.items) }

// Quantity returns the quantity held for productID, or zero.
func (c *Cart) Quantity(productID ID) int {
	for _, it := range c.items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() Cart {
	out := Cart{items: c.Items()}
	out.reindex()
	return out
}

func (c *Cart) reindex() {
	c.index = make(map[ID]int, len(c.items))
	for i, it := range c.items {
		c.index[it.ProductID] = i
	}
}

func (c Cart) MarshalJSON() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(items)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.Clear()
	for _, it := range items {
		c.Add(it)
	}
	return nil
}
