// Package seed holds the fixture data every screen starts from. Nothing is
// persisted: a restart always comes back to these collections. Services
// receive their seed slice explicitly so tests can substitute fixtures.
package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"solarhub-backend/internal/model"
)

// DemoPassword signs in any seeded account.
const DemoPassword = "solar123"

// MustHash bcrypt-hashes a password for fixture accounts. MinCost keeps
// startup and test runs fast; these are demo credentials, not real ones.
func MustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("seed: hashing password: %v", err)
	}
	return string(hash)
}

func Users() []model.User {
	hash := MustHash(DemoPassword)
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin, Status: model.StatusActive, PasswordHash: hash},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleManager, Status: model.StatusActive, PasswordHash: hash},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: model.RoleUser, Status: model.StatusInactive, PasswordHash: hash},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: model.RoleUser, Status: model.StatusActive, PasswordHash: hash},
	}
}

func Products() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Solar Panel 300W", Category: "Solar Panels", Price: "₹12,000", Stock: 45},
		{ID: 2, Name: "Inverter 5kW", Category: "Inverters", Price: "₹45,000", Stock: 12},
		{ID: 3, Name: "Battery 200Ah", Category: "Batteries", Price: "₹18,000", Stock: 23},
		{ID: 4, Name: "Mounting Structure", Category: "Accessories", Price: "₹8,500", Stock: 34},
	}
}

func Tasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "System Maintenance", AssigneeID: 1, DueDate: "2024-04-15", Status: model.TaskInProgress},
		{ID: 2, Title: "Client Meeting", AssigneeID: 2, DueDate: "2024-04-10", Status: model.TaskCompleted},
		{ID: 3, Title: "Product Testing", AssigneeID: 3, DueDate: "2024-04-20", Status: model.TaskPending},
	}
}

func Departments() []model.Department {
	return []model.Department{
		{ID: 1, Name: "Sales", ManagerID: 2, Employees: 12},
		{ID: 2, Name: "Engineering", ManagerID: 1, Employees: 8},
		{ID: 3, Name: "Operations", ManagerID: 4, Employees: 5},
	}
}

func Notifications() []model.Notification {
	return []model.Notification{
		{ID: 1, Type: model.NotificationOrder, Message: "New order placed #12345", Read: false, Timestamp: "2m ago"},
		{ID: 2, Type: model.NotificationPayment, Message: "Payment received for order #12345", Read: true, Timestamp: "10m ago"},
		{ID: 3, Type: model.NotificationUser, Message: "New user registered: John Doe", Read: false, Timestamp: "1h ago"},
		{ID: 4, Type: model.NotificationInventory, Message: "Stock alert: Solar panels low", Read: false, Timestamp: "3h ago"},
	}
}

const catalogImage = "https://cdn.britannica.com/94/192794-050-3F3F3DDD/panels-electricity-order-sunlight.jpg"

func Catalog() []model.CatalogProduct {
	return []model.CatalogProduct{
		{
			ID: 1, Name: "Solar Panel 100W Monocrystalline", Price: "$150",
			Description: "High-efficiency solar panel designed for residential and small commercial applications.",
			Image:       catalogImage, Category: "Solar Panels",
			Features: []string{
				"Monocrystalline silicon cells",
				"Aluminum frame for durability",
				"Waterproof junction box",
				"12-year product warranty",
			},
			Specifications: map[string]string{"wattage": "100W", "voltage": "12V", "efficiency": "22.5%"},
		},
		{
			ID: 2, Name: "Solar Inverter 3kW Hybrid", Price: "$500",
			Description: "Advanced hybrid inverter with smart grid integration and battery backup capabilities.",
			Image:       catalogImage, Category: "Inverters",
			Features: []string{
				"Grid-tie and off-grid functionality",
				"MPPT charge controller",
				"Wi-Fi monitoring",
				"Pure sine wave output",
			},
			Specifications: map[string]string{"wattage": "3000W", "voltage": "220V/110V", "efficiency": "95%"},
		},
		{
			ID: 3, Name: "Solar Battery 200Ah Lithium", Price: "$300",
			Description: "High-capacity lithium iron phosphate (LiFePO4) battery for reliable energy storage.",
			Image:       catalogImage, Category: "Energy Storage",
			Features: []string{
				"Long cycle life (3000+ cycles)",
				"Fast charging",
				"Lightweight design",
				"Built-in battery management system",
			},
			Specifications: map[string]string{"voltage": "12V", "capacity": "200Ah", "weight": "25kg"},
		},
		{
			ID: 4, Name: "Portable Solar Generator 1000W", Price: "$799",
			Description: "Compact and powerful solar generator for outdoor adventures and emergency backup.",
			Image:       catalogImage, Category: "Portable Power",
			Features: []string{
				"Multiple output ports",
				"Quick solar charging",
				"Lightweight design",
				"Built-in LED flashlight",
			},
			Specifications: map[string]string{"capacity": "1000Wh", "weight": "10kg", "outlets": "AC, USB, 12V"},
		},
		{
			ID: 5, Name: "Wind Turbine 400W Horizontal", Price: "$450",
			Description: "Efficient small-scale wind turbine for residential and off-grid applications.",
			Image:       catalogImage, Category: "Wind Energy",
			Features: []string{
				"Low wind speed start",
				"Corrosion-resistant materials",
				"Automatic brake system",
				"Silent operation",
			},
			Specifications: map[string]string{"wattage": "400W", "cut-in speed": "3m/s", "max speed": "25m/s"},
		},
		{
			ID: 6, Name: "Smart Solar Charge Controller", Price: "$129",
			Description: "Advanced MPPT charge controller with smartphone app integration.",
			Image:       catalogImage, Category: "Accessories",
			Features: []string{
				"Bluetooth monitoring",
				"Temperature compensation",
				"Multiple battery type support",
				"LCD display",
			},
			Specifications: map[string]string{"voltage": "12V/24V", "max current": "40A", "efficiency": "99%"},
		},
		{
			ID: 7, Name: "Grid-Tie Solar Micro Inverter", Price: "$199",
			Description: "Per-panel micro inverter for enhanced solar system performance.",
			Image:       catalogImage, Category: "Inverters",
			Features: []string{
				"Individual panel optimization",
				"Real-time monitoring",
				"Weather-resistant design",
				"Easy installation",
			},
			Specifications: map[string]string{"input voltage": "24V-40V", "output voltage": "230V", "efficiency": "96.5%"},
		},
		{
			ID: 8, Name: "Flexible Solar Panel 50W", Price: "$99",
			Description: "Ultra-thin and lightweight flexible solar panel for curved surfaces.",
			Image:       catalogImage, Category: "Solar Panels",
			Features: []string{
				"Bendable up to 30 degrees",
				"Lightweight design",
				"Perfect for RVs and boats",
				"Weather-resistant",
			},
			Specifications: map[string]string{"wattage": "50W", "weight": "2.5kg", "efficiency": "20%"},
		},
	}
}

func Orders() []model.Order {
	return []model.Order{
		{ID: 1, Date: "2024-03-01", Status: model.OrderCompleted, Amount: "₹45,000"},
		{ID: 2, Date: "2024-02-15", Status: model.OrderInProgress, Amount: "₹32,000"},
	}
}

func Plants() []model.Plant {
	return []model.Plant{
		{ID: 1, Name: "Home Rooftop", Capacity: "5kW", Status: "Active", LastMaintenance: "2024-02-28", Efficiency: "95%"},
	}
}

func Profile() model.Profile {
	return model.Profile{
		Name:               "John Doe",
		Email:              "john@example.com",
		Phone:              "+1234567890",
		Address:            "123 Solar Street",
		EmailNotifications: true,
		SMSNotifications:   true,
	}
}

func EnergyReadings() []model.EnergyReading {
	return []model.EnergyReading{
		{Date: "2024-03-01", Generation: 245},
		{Date: "2024-03-02", Generation: 256},
		{Date: "2024-03-03", Generation: 234},
		{Date: "2024-03-04", Generation: 267},
		{Date: "2024-03-05", Generation: 278},
		{Date: "2024-03-06", Generation: 289},
		{Date: "2024-03-07", Generation: 245},
	}
}

func Revenue() []model.RevenuePoint {
	return []model.RevenuePoint{
		{Month: "Jan", Revenue: 400000},
		{Month: "Feb", Revenue: 300000},
		{Month: "Mar", Revenue: 600000},
		{Month: "Apr", Revenue: 800000},
		{Month: "May", Revenue: 500000},
		{Month: "Jun", Revenue: 900000},
	}
}

func Activities() []model.Activity {
	return []model.Activity{
		{Message: "New user registered: Alice Brown", Time: "2 hours ago"},
		{Message: "Order #1234 completed", Time: "1 day ago"},
		{Message: "System maintenance performed", Time: "2 days ago"},
	}
}

func Settings() model.Settings {
	return model.Settings{
		Notifications: true,
		DarkMode:      false,
		Timezone:      "Asia/Kolkata",
		Language:      "en",
	}
}
