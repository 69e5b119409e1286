package repository

// ProductListFilter filters the product listing query.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	Search       string
	PriceMin     *int64
	PriceMax     *int64
	Sort         string
	OnlyActive   bool
	WithCategory bool
}

// OrderListFilter filters the order listing query.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}
