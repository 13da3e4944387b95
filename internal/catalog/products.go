package catalog

import "storefront/internal/domain"

// seedProducts is the built-in catalog. It is defined entirely at
// process start and never changes at runtime.
var seedProducts = []domain.Product{
	{
		ID:            "1",
		Name:          "Wireless Earbuds Pro",
		Description:   "High-quality wireless earbuds with active noise cancellation and premium sound quality. Includes wireless charging case with up to 24 hours of battery life.",
		Price:         149.99,
		DiscountPrice: 129.99,
		Images: []string{
			"https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg",
			"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
		},
		Category:    "Audio",
		Tags:        []string{"wireless", "earbuds", "audio", "bluetooth"},
		Rating:      4.8,
		ReviewCount: 256,
		Stock:       42,
		Featured:    true,
	},
	{
		ID:          "2",
		Name:        "Premium Smart Watch",
		Description: "Advanced smartwatch with health monitoring, GPS, and a stunning always-on display. Water-resistant and compatible with all smartphones.",
		Price:       299.99,
		Images: []string{
			"https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			"https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg",
		},
		Category:    "Wearables",
		Tags:        []string{"watch", "smartwatch", "fitness", "health"},
		Rating:      4.7,
		ReviewCount: 189,
		Stock:       23,
		Featured:    true,
	},
	{
		ID:            "3",
		Name:          "Ultra-Slim Laptop",
		Description:   "Powerful and lightweight laptop with a 14-inch 4K display, all-day battery life, and the latest generation processor.",
		Price:         1299.99,
		DiscountPrice: 1199.99,
		Images: []string{
			"https://images.pexels.com/photos/18105/pexels-photo.jpg",
			"https://images.pexels.com/photos/7974/pexels-photo.jpg",
		},
		Category:    "Computers",
		Tags:        []string{"laptop", "ultrabook", "portable", "work"},
		Rating:      4.9,
		ReviewCount: 142,
		Stock:       15,
		Featured:    true,
	},
	{
		ID:          "4",
		Name:        "Wireless Charging Pad",
		Description: "Fast wireless charging pad compatible with all Qi-enabled devices. Sleek, minimalist design fits any desk setup.",
		Price:       49.99,
		Images: []string{
			"https://images.pexels.com/photos/4526407/pexels-photo-4526407.jpeg",
			"https://images.pexels.com/photos/3690406/pexels-photo-3690406.jpeg",
		},
		Category:    "Accessories",
		Tags:        []string{"charging", "wireless", "accessories"},
		Rating:      4.5,
		ReviewCount: 98,
		Stock:       67,
		Featured:    false,
	},
	{
		ID:          "5",
		Name:        "Noise-Cancelling Headphones",
		Description: "Premium over-ear headphones with industry-leading noise cancellation, amazing sound quality, and 30 hours of battery life.",
		Price:       349.99,
		Images: []string{
			"https://images.pexels.com/photos/577769/pexels-photo-577769.jpeg",
			"https://images.pexels.com/photos/3394666/pexels-photo-3394666.jpeg",
		},
		Category:    "Audio",
		Tags:        []string{"headphones", "audio", "noise-cancelling"},
		Rating:      4.8,
		ReviewCount: 217,
		Stock:       31,
		Featured:    true,
	},
	{
		ID:            "6",
		Name:          "Smart Home Hub",
		Description:   "Central smart home controller compatible with all major smart home devices and voice assistants.",
		Price:         129.99,
		DiscountPrice: 99.99,
		Images: []string{
			"https://images.pexels.com/photos/4316738/pexels-photo-4316738.jpeg",
			"https://images.pexels.com/photos/4219652/pexels-photo-4219652.jpeg",
		},
		Category:    "Smart Home",
		Tags:        []string{"smart home", "automation", "voice control"},
		Rating:      4.6,
		ReviewCount: 124,
		Stock:       42,
		Featured:    false,
	},
	{
		ID:          "7",
		Name:        "Professional Camera Drone",
		Description: "High-performance drone with 4K camera, obstacle avoidance, and 30 minutes of flight time. Perfect for aerial photography and videography.",
		Price:       799.99,
		Images: []string{
			"https://images.pexels.com/photos/336232/pexels-photo-336232.jpeg",
			"https://images.pexels.com/photos/4062453/pexels-photo-4062453.jpeg",
		},
		Category:    "Photography",
		Tags:        []string{"drone", "camera", "aerial", "photography"},
		Rating:      4.7,
		ReviewCount: 87,
		Stock:       8,
		Featured:    true,
	},
	{
		ID:          "8",
		Name:        "Premium Mechanical Keyboard",
		Description: "Mechanical keyboard with customizable RGB lighting, programmable keys, and premium build quality for the ultimate typing experience.",
		Price:       149.99,
		Images: []string{
			"https://images.pexels.com/photos/1772123/pexels-photo-1772123.jpeg",
			"https://images.pexels.com/photos/3687769/pexels-photo-3687769.jpeg",
		},
		Category:    "Accessories",
		Tags:        []string{"keyboard", "mechanical", "gaming", "accessories"},
		Rating:      4.6,
		ReviewCount: 142,
		Stock:       29,
		Featured:    false,
	},
}
