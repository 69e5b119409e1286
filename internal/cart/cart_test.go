package cart

import (
	"testing"

	"github.com/mocnhien/storefront/internal/models"
)

func vnd(amount int64) models.Money {
	return models.NewMoneyFromInt(amount)
}

func item(id uint, price int64) LineItem {
	return LineItem{
		ProductID: id,
		Name:      models.JSON{"vi": "Ghế gỗ sồi", "en": "Oak chair"},
		UnitPrice: vnd(price),
	}
}

func TestAddMergesByProductID(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 1)
	c.Add(item(1, 100000), 1)
	c.Add(item(2, 250000), 3)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected product 1 qty 2, got product %d qty %d", items[0].ProductID, items[0].Quantity)
	}
	if items[1].ProductID != 2 || items[1].Quantity != 3 {
		t.Fatalf("expected product 2 qty 3, got product %d qty %d", items[1].ProductID, items[1].Quantity)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 0)
	c.Add(item(2, 100000), -5)
	if c.TotalItems() != 2 {
		t.Fatalf("expected total items 2, got %d", c.TotalItems())
	}
}

func TestTotals(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 2)
	c.Add(item(2, 250000), 1)

	if c.TotalItems() != 3 {
		t.Fatalf("expected total items 3, got %d", c.TotalItems())
	}
	if got := c.TotalPrice().String(); got != "450000" {
		t.Fatalf("expected total 450000, got %s", got)
	}
}

func TestTotalPriceUsesSalePrice(t *testing.T) {
	var c Cart
	sale := vnd(80000)
	li := item(1, 100000)
	li.SalePrice = &sale
	c.Add(li, 2)

	if got := c.TotalPrice().String(); got != "160000" {
		t.Fatalf("expected total 160000, got %s", got)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 1)
	c.Remove(99)
	if len(c.Items()) != 1 {
		t.Fatalf("expected 1 line after removing absent id, got %d", len(c.Items()))
	}
	c.Remove(1)
	if !c.IsEmpty() {
		t.Fatal("expected empty cart after removing last line")
	}
}

func TestSetQuantity(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 2)

	c.SetQuantity(1, 5)
	if got := c.Find(1); got == nil || got.Quantity != 5 {
		t.Fatalf("expected qty 5, got %+v", got)
	}

	c.SetQuantity(99, 3)
	if len(c.Items()) != 1 {
		t.Fatalf("expected set on absent id to be a no-op, got %d lines", len(c.Items()))
	}

	c.SetQuantity(1, 0)
	if c.Find(1) != nil {
		t.Fatal("expected zero quantity to remove the line")
	}
}

func TestIncreaseDecrease(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 1)

	c.Increase(1)
	if got := c.Find(1); got == nil || got.Quantity != 2 {
		t.Fatalf("expected qty 2 after increase, got %+v", got)
	}

	c.Decrease(1)
	if got := c.Find(1); got == nil || got.Quantity != 1 {
		t.Fatalf("expected qty 1 after decrease, got %+v", got)
	}

	c.Decrease(1)
	if c.Find(1) != nil {
		t.Fatal("expected decrease below 1 to remove the line")
	}

	c.Decrease(99)
	if !c.IsEmpty() {
		t.Fatal("expected decrease on absent id to be a no-op")
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(item(1, 100000), 2)
	c.Add(item(2, 250000), 1)
	c.Clear()
	if !c.IsEmpty() || c.TotalItems() != 0 {
		t.Fatal("expected empty cart after clear")
	}
	if got := c.TotalPrice().String(); got != "0" {
		t.Fatalf("expected total 0, got %s", got)
	}
}
