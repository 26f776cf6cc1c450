package product

import "github.com/shopspring/decimal"

// Catalog returns the fixed product list provided by the catalog supplier.
func Catalog() []Product {
	price := decimal.RequireFromString

	return []Product{
		{Name: "Wireless Headphones", Price: price("79.99"), Description: "Premium noise-cancelling wireless headphones", Image: "https://via.placeholder.com/150?text=Headphones"},
		{Name: "Smart Watch", Price: price("199.99"), Description: "Fitness tracking smartwatch with heart rate monitor", Image: "https://via.placeholder.com/150?text=Smart+Watch"},
		{Name: "Laptop Stand", Price: price("49.99"), Description: "Ergonomic aluminum laptop stand", Image: "https://via.placeholder.com/150?text=Laptop+Stand"},
		{Name: "USB-C Hub", Price: price("39.99"), Description: "Multi-port USB-C hub with HDMI and SD card reader", Image: "https://via.placeholder.com/150?text=USB+Hub"},
		{Name: "Mechanical Keyboard", Price: price("129.99"), Description: "RGB backlit mechanical keyboard with blue switches", Image: "https://via.placeholder.com/150?text=Keyboard"},
		{Name: "Wireless Mouse", Price: price("29.99"), Description: "Ergonomic wireless mouse with adjustable DPI", Image: "https://via.placeholder.com/150?text=Mouse"},
		{Name: "Webcam HD", Price: price("69.99"), Description: "1080p HD webcam with built-in microphone", Image: "https://via.placeholder.com/150?text=Webcam"},
		{Name: "Phone Case", Price: price("19.99"), Description: "Durable protective phone case", Image: "https://via.placeholder.com/150?text=Phone+Case"},
		{Name: "Screen Protector", Price: price("14.99"), Description: "Tempered glass screen protector", Image: "https://via.placeholder.com/150?text=Screen+Protector"},
		{Name: "Charging Cable", Price: price("12.99"), Description: "Fast charging USB-C cable 6ft", Image: "https://via.placeholder.com/150?text=Cable"},
	}
}
