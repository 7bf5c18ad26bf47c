package domain

// CartItem is one user's pending quantity of one product. At most one row
// exists per (user, product) pair, enforced by upsert-on-add rather than a
// unique index.
type CartItem struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint64 `json:"productId" gorm:"not null;index"`
	UserID    string `json:"userId" gorm:"not null;index"`
	Quantity  int    `json:"quantity" gorm:"not null"`
}
