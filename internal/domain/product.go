package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFruits     Category = "FRUITS"
	CategoryVegetables Category = "VEGETABLES"
	CategoryDairy      Category = "DAIRY"
	CategoryBeverages  Category = "BEVERAGES"
)

func Categories() []Category {
	return []Category{CategoryFruits, CategoryVegetables, CategoryDairy, CategoryBeverages}
}

// ParseCategory accepts any casing, e.g. "dairy" from a URL path.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(s))
	switch c {
	case CategoryFruits, CategoryVegetables, CategoryDairy, CategoryBeverages:
		return c, nil
	}
	return "", fmt.Errorf("unknown category: %s", s)
}

type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"not null"`
	Category    Category        `json:"category" gorm:"type:enum('FRUITS','VEGETABLES','DAIRY','BEVERAGES');not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
}
