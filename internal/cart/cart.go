package cart

import (
	"github.com/mocnhien/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// LineItem is a single product entry in the cart.
type LineItem struct {
	ProductID uint          `json:"product_id"`
	Slug      string        `json:"slug"`
	Name      models.JSON   `json:"name"`
	UnitPrice models.Money  `json:"unit_price"`
	SalePrice *models.Money `json:"sale_price,omitempty"`
	Quantity  int           `json:"quantity"`
	Image     string        `json:"image,omitempty"`
	Variant   string        `json:"variant,omitempty"`
}

// EffectivePrice returns the sale price when present, otherwise the unit price.
func (li LineItem) EffectivePrice() models.Money {
	if li.SalePrice != nil {
		return *li.SalePrice
	}
	return li.UnitPrice
}

// Subtotal returns effective price times quantity.
func (li LineItem) Subtotal() models.Money {
	return models.NewMoneyFromDecimal(
		li.EffectivePrice().Decimal.Mul(decimal.NewFromInt(int64(li.Quantity))),
	)
}

// Cart holds an ordered set of line items, at most one per product id.
type Cart struct {
	items []LineItem
}

// Add merges an item into the cart. An existing line for the same product
// gains quantity; a new product is appended. Quantities below 1 count as 1.
func (c *Cart) Add(item LineItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	c.items = append(c.items, item)
}

// Remove drops the line for a product id. Absent ids are a no-op.
func (c *Cart) Remove(productID uint) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets an absolute quantity. Zero or negative removes the line;
// absent ids are a no-op.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Increase bumps a line's quantity by one.
func (c *Cart) Increase(productID uint) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return
		}
	}
}

// Decrease lowers a line's quantity by one, removing it below 1.
func (c *Cart) Decrease(productID uint) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			if c.items[i].Quantity <= 1 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity--
			}
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the line for a product id, or nil.
func (c *Cart) Find(productID uint) *LineItem {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			item := c.items[i]
			return &item
		}
	}
	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalItems sums the quantities of all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Quantity
	}
	return total
}

// TotalPrice sums effective price times quantity over all lines.
func (c *Cart) TotalPrice() models.Money {
	total := decimal.Zero
	for i := range c.items {
		total = total.Add(c.items[i].Subtotal().Decimal)
	}
	return models.NewMoneyFromDecimal(total)
}
