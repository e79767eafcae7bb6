package cart

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Item is one line in the cart.
type Item struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// NewItem builds an Item. Negative quantities are clamped to zero.
func NewItem(name string, price decimal.Decimal, quantity int) Item {
	if quantity < 0 {
		quantity = 0
	}
	return Item{Name: name, Price: price, Quantity: quantity}
}

// LineTotal returns price * quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered, immutable sequence of items.
type Cart struct {
	items []Item
}

// New copies items into a Cart, preserving order.
func New(items ...Item) Cart {
	return Cart{items: slices.Clone(items)}
}

// Default returns the fixed cart shown on the screen.
func Default() Cart {
	return New(
		NewItem("Laptop", decimal.RequireFromString("1599.99"), 1),
		NewItem("Smartphone", decimal.RequireFromString("599.99"), 2),
		NewItem("Headphones", decimal.RequireFromString("199.99"), 1),
	)
}

// Items returns a copy of the cart's items in order.
func (c Cart) Items() []Item {
	return slices.Clone(c.items)
}

// Len reports the number of items in the cart.
func (c Cart) Len() int {
	return len(c.items)
}

// Total sums LineTotal over the cart.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// FormatMoney renders amount with a currency prefix and exactly two decimals.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
