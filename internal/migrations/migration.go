package migrations

import (
	"log"
	"time"

	"dashboard_api/internal/models"
	"dashboard_api/internal/repository"
	"dashboard_api/internal/services"

	"gorm.io/gorm"
)

// RunMigrations recreates the schema from scratch and seeds demo data.
// Meant for the init-db script, not the server process.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.User{},
		&models.UserSettings{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Activity{},
		&models.Notification{},
		&models.Report{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Activity{},
		&models.Notification{},
		&models.Report{},
	)
	if err != nil {
		return err
	}

	// Create default data
	err = createDefaultData(db)
	if err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData creates a demo account with sample products,
// customers and activities.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, nil, "seed")

	existing, err := userRepo.GetByEmail("test@example.com")
	if err == nil && existing != nil {
		log.Println("Demo user already exists")
		return nil
	}

	user, err := authService.Register(services.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "test123",
	})
	if err != nil {
		log.Printf("Warning: Failed to create demo user: %v", err)
		return err
	}
	log.Println("Demo user created: test@example.com / test123")

	productRepo := repository.NewProductRepository(db)
	products := []models.Product{
		{UserID: user.ID, Name: "Laptop", Percentage: 25, Color: "#3B82F6", Price: f64(999.99), Category: "Electronics", Stock: i(50), Description: "High-performance laptop"},
		{UserID: user.ID, Name: "Smartphone", Percentage: 30, Color: "#10B981", Price: f64(699.99), Category: "Electronics", Stock: i(100), Description: "Latest smartphone model"},
		{UserID: user.ID, Name: "Headphones", Percentage: 20, Color: "#F59E0B", Price: f64(199.99), Category: "Audio", Stock: i(75), Description: "Wireless noise-canceling headphones"},
		{UserID: user.ID, Name: "Tablet", Percentage: 25, Color: "#8B5CF6", Price: f64(399.99), Category: "Electronics", Stock: i(30), Description: "Portable tablet device"},
	}
	for idx := range products {
		if err := productRepo.Create(&products[idx]); err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", products[idx].Name, err)
		}
	}
	log.Printf("Seeded %d products", len(products))

	customerRepo := repository.NewCustomerRepository(db)
	customers := []models.Customer{
		{UserID: user.ID, Name: "John Doe", Email: "john@example.com", Phone: "555-0101", City: "New York", Country: "USA", Status: string(models.CustomerActive)},
		{UserID: user.ID, Name: "Jane Smith", Email: "jane@example.com", Phone: "555-0102", City: "London", Country: "UK", Status: string(models.CustomerVIP)},
		{UserID: user.ID, Name: "Carlos Ruiz", Email: "carlos@example.com", Phone: "555-0103", City: "Madrid", Country: "Spain", Status: string(models.CustomerActive)},
	}
	for idx := range customers {
		if err := customerRepo.Create(&customers[idx]); err != nil {
			log.Printf("Warning: Failed to seed customer %s: %v", customers[idx].Name, err)
		}
	}
	log.Printf("Seeded %d customers", len(customers))

	activityRepo := repository.NewActivityRepository(db)
	now := time.Now()
	for week := 0; week < 4; week++ {
		activity := &models.Activity{
			UserID:    user.ID,
			Week:      now.AddDate(0, 0, -7*week).Format("Jan 02"),
			Guest:     120 - week*10,
			UserCount: 400 - week*25,
			Date:      now.AddDate(0, 0, -7*week),
		}
		if err := activityRepo.Create(activity); err != nil {
			log.Printf("Warning: Failed to seed activity: %v", err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
