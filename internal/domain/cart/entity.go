// internal/domain/cart/entity.go
package cart

// DefaultUnit is used when a product is added without a unit of measure
const DefaultUnit = "1 pc"

// ProductInput is the contract a catalog screen must satisfy to add a product
type ProductInput struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required"` // Unit price in paise
	Image string `json:"image"`
	Unit  string `json:"unit"`
}

// LineItem represents one product entry in the cart with its own quantity
type LineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"` // In paise
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}

// TotalPrice returns the extended price of the line
func (li LineItem) TotalPrice() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// CloneItems deep-copies a cart snapshot so later mutations cannot leak
// into records that froze it (order history, tests)
func CloneItems(items []LineItem) []LineItem {
	cloned := make([]LineItem, len(items))
	copy(cloned, items)
	return cloned
}
