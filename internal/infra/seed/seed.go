package seed

import (
	"os"

	"grocery-store/internal/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "seed").Logger()

// Load inserts demo catalog and cart data on first startup. It is a no-op
// when the product table already has rows.
func Load(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := sampleProducts()
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	logger.Info().Int("products", len(products)).Msg("loaded sample products")

	cartItems := []domain.CartItem{
		{ProductID: products[0].ID, UserID: "user123", Quantity: 2},
		{ProductID: products[1].ID, UserID: "user123", Quantity: 1},
		{ProductID: products[8].ID, UserID: "user123", Quantity: 1},
		{ProductID: products[12].ID, UserID: "user123", Quantity: 3},
		{ProductID: products[2].ID, UserID: "user456", Quantity: 4},
		{ProductID: products[6].ID, UserID: "user456", Quantity: 2},
	}
	if err := db.Create(&cartItems).Error; err != nil {
		return err
	}
	logger.Info().Int("cartItems", len(cartItems)).Msg("loaded sample cart items")

	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{Name: "Fresh Apples", Category: domain.CategoryFruits, Price: price("3.99"),
			ImageURL:    "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=300&fit=crop&crop=center",
			Description: "Crisp and sweet red apples, perfect for snacking or baking."},
		{Name: "Organic Bananas", Category: domain.CategoryFruits, Price: price("2.49"),
			ImageURL:    "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400&h=300&fit=crop&crop=center",
			Description: "Naturally ripened organic bananas, rich in potassium."},
		{Name: "Fresh Oranges", Category: domain.CategoryFruits, Price: price("4.99"),
			ImageURL:    "https://images.unsplash.com/photo-1547514701-42782101795e?w=400&h=300&fit=crop&crop=center",
			Description: "Juicy navel oranges packed with vitamin C."},
		{Name: "Strawberries", Category: domain.CategoryFruits, Price: price("5.99"),
			ImageURL:    "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400&h=300&fit=crop&crop=center",
			Description: "Sweet and juicy strawberries, perfect for desserts."},

		{Name: "Fresh Carrots", Category: domain.CategoryVegetables, Price: price("1.99"),
			ImageURL:    "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=400&h=300&fit=crop&crop=center",
			Description: "Crunchy orange carrots, great for snacking or cooking."},
		{Name: "Organic Spinach", Category: domain.CategoryVegetables, Price: price("3.49"),
			ImageURL:    "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400&h=300&fit=crop&crop=center",
			Description: "Fresh organic spinach leaves, perfect for salads."},
		{Name: "Bell Peppers", Category: domain.CategoryVegetables, Price: price("4.49"),
			ImageURL:    "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=400&h=300&fit=crop&crop=center",
			Description: "Colorful bell peppers - red, yellow, and green mix."},
		{Name: "Broccoli", Category: domain.CategoryVegetables, Price: price("2.99"),
			ImageURL:    "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400&h=300&fit=crop&crop=center",
			Description: "Fresh broccoli crowns, rich in vitamins and fiber."},

		{Name: "Whole Milk", Category: domain.CategoryDairy, Price: price("3.29"),
			ImageURL:    "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400&h=300&fit=crop&crop=center",
			Description: "Fresh whole milk, 1 gallon. Rich and creamy."},
		{Name: "Greek Yogurt", Category: domain.CategoryDairy, Price: price("5.99"),
			ImageURL:    "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400&h=300&fit=crop&crop=center",
			Description: "Thick and creamy Greek yogurt, high in protein."},
		{Name: "Cheddar Cheese", Category: domain.CategoryDairy, Price: price("4.99"),
			ImageURL:    "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=400&h=300&fit=crop&crop=center",
			Description: "Sharp cheddar cheese block, aged to perfection."},
		{Name: "Organic Butter", Category: domain.CategoryDairy, Price: price("6.49"),
			ImageURL:    "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?w=400&h=300&fit=crop&crop=center",
			Description: "Creamy organic butter made from grass-fed cows."},

		{Name: "Orange Juice", Category: domain.CategoryBeverages, Price: price("4.99"),
			ImageURL:    "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=400&h=300&fit=crop&crop=center",
			Description: "100% pure orange juice, not from concentrate."},
		{Name: "Sparkling Water", Category: domain.CategoryBeverages, Price: price("2.99"),
			ImageURL:    "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=400&h=300&fit=crop&crop=center",
			Description: "Refreshing sparkling water with natural flavors."},
		{Name: "Green Tea", Category: domain.CategoryBeverages, Price: price("7.99"),
			ImageURL:    "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400&h=300&fit=crop&crop=center",
			Description: "Premium green tea bags, antioxidant-rich."},
		{Name: "Coffee Beans", Category: domain.CategoryBeverages, Price: price("12.99"),
			ImageURL:    "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400&h=300&fit=crop&crop=center",
			Description: "Premium arabica coffee beans, medium roast."},
	}
}
