package catalog

import "time"

// SeedProducts returns the built-in mock catalog served by the storefront.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            1,
			Title:         "AirPods Pro (2nd Generation)",
			Description:   "Active Noise Cancellation, Transparency mode, Personalized Spatial Audio, and longer battery life.",
			Price:         "$249.99",
			OriginalPrice: "$299.99",
			Discount:      17,
			Rating:        4.8,
			ReviewCount:   15420,
			Image:         "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=400&h=400&fit=crop&auto=format",
			Images: []string{
				"https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=400&h=400&fit=crop&auto=format",
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop&auto=format",
			},
			InStock:    true,
			StockCount: 45,
			SaleTag:    true,
			Category:   "Audio",
			Brand:      "Apple",
			Features:   []string{"Active Noise Cancellation", "Spatial Audio", "Water Resistant", "Wireless Charging"},
			Specifications: map[string]string{
				"Battery Life":  "Up to 6 hours",
				"Charging Case": "Up to 30 hours",
				"Connectivity":  "Bluetooth 5.3",
				"Weight":        "5.3g per earbud",
			},
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 8, 20, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:            2,
			Title:         "MacBook Pro 16-inch",
			Description:   "Supercharged by M3 Pro and M3 Max chips. Up to 22 hours of battery life. Liquid Retina XDR display.",
			Price:         "$2,499.99",
			OriginalPrice: "$2,699.99",
			Discount:      7,
			Rating:        4.9,
			ReviewCount:   8934,
			Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400&h=400&fit=crop&auto=format",
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400&h=400&fit=crop&auto=format",
				"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400&h=400&fit=crop&auto=format",
			},
			InStock:    true,
			StockCount: 12,
			SaleTag:    true,
			Category:   "Computers",
			Brand:      "Apple",
			Features:   []string{"M3 Pro Chip", "16GB Unified Memory", "512GB SSD", "Liquid Retina XDR"},
			Specifications: map[string]string{
				"Display":   "16.2-inch Liquid Retina XDR",
				"Processor": "Apple M3 Pro",
				"Memory":    "16GB unified memory",
				"Storage":   "512GB SSD",
			},
			CreatedAt: time.Date(2024, 2, 10, 14, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 8, 22, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Title:       "iPhone 15 Pro Max",
			Description: "Titanium design. A17 Pro chip. Action Button. All-new 48MP Main camera for super-high-resolution photos.",
			Price:       "$1,199.99",
			Rating:      4.7,
			ReviewCount: 23450,
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=400&fit=crop&auto=format",
			Images: []string{
				"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=400&fit=crop&auto=format",
				"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop&auto=format",
			},
			InStock:    false,
			StockCount: 0,
			Category:   "Phones",
			Brand:      "Apple",
			Features:   []string{"A17 Pro Chip", "48MP Camera System", "Action Button", "Titanium Design"},
			Specifications: map[string]string{
				"Display":   "6.7-inch Super Retina XDR",
				"Processor": "A17 Pro chip",
				"Camera":    "48MP Main | 12MP Ultra Wide",
				"Storage":   "256GB",
			},
			CreatedAt: time.Date(2024, 3, 5, 11, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 8, 21, 16, 20, 0, 0, time.UTC),
		},
		{
			ID:            4,
			Title:         "Apple Watch Series 9",
			Description:   "Your essential companion for a healthy life. Advanced health sensors and apps to help you track workouts.",
			Price:         "$399.99",
			OriginalPrice: "$449.99",
			Discount:      11,
			Rating:        4.6,
			ReviewCount:   12890,
			Image:         "https://images.unsplash.com/photo-1551816230-ef5deaed4a26?w=400&h=400&fit=crop&auto=format",
			Images: []string{
				"https://images.unsplash.com/photo-1551816230-ef5deaed4a26?w=400&h=400&fit=crop&auto=format",
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop&auto=format",
			},
			InStock:    true,
			StockCount: 28,
			SaleTag:    true,
			Category:   "Wearables",
			Brand:      "Apple",
			Features:   []string{"Health Monitoring", "Fitness Tracking", "ECG App", "Blood Oxygen"},
			Specifications: map[string]string{
				"Display":          "45mm Always-On Retina",
				"Processor":        "S9 SiP",
				"Battery":          "Up to 18 hours",
				"Water Resistance": "50 meters",
			},
			CreatedAt: time.Date(2024, 1, 28, 9, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 8, 19, 13, 45, 0, 0, time.UTC),
		},
	}
}
