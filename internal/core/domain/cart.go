package domain

// CartSnapshot is the derived view of a cart handed to whoever renders it.
type CartSnapshot struct {
	Items []Exam `json:"items"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

// TotalDisplay is Total formatted for display.
func (s CartSnapshot) TotalDisplay() string {
	return FormatPrice(s.Total)
}

// Cart is an ordered selection of exams with at most one entry per exam id.
// It is not safe for concurrent use.
type Cart struct {
	items    []Exam
	onChange func(CartSnapshot)
}

// NewCart returns an empty cart. onChange, when not nil, is called with the
// fresh snapshot after every mutation that changed or cleared the cart.
func NewCart(onChange func(CartSnapshot)) *Cart {
	return &Cart{onChange: onChange}
}

// RestoreCart rebuilds a cart from previously saved entries, dropping
// duplicate ids. onChange is not called.
func RestoreCart(items []Exam, onChange func(CartSnapshot)) *Cart {
	c := NewCart(onChange)
	for _, item := range items {
		if !c.Contains(item.ID) {
			c.items = append(c.items, item)
		}
	}
	return c
}

// AddItem appends item unless an entry with the same id is already present.
func (c *Cart) AddItem(item Exam) CartSnapshot {
	if c.Contains(item.ID) {
		return c.Snapshot()
	}
	c.items = append(c.items, item)
	return c.changed()
}

// RemoveItem drops the entry with the given id, if any.
func (c *Cart) RemoveItem(id string) CartSnapshot {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return c.changed()
}

// Clear empties the cart.
func (c *Cart) Clear() CartSnapshot {
	c.items = nil
	return c.changed()
}

func (c *Cart) Contains(id string) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Total is the sum of the entry prices.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

func (c *Cart) Count() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []Exam {
	return append([]Exam{}, c.items...)
}

func (c *Cart) Snapshot() CartSnapshot {
	return CartSnapshot{
		Items: c.Items(),
		Total: c.Total(),
		Count: c.Count(),
	}
}

func (c *Cart) changed() CartSnapshot {
	s := c.Snapshot()
	if c.onChange != nil {
		c.onChange(s)
	}
	return s
}
