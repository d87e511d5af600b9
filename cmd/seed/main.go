package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and creates a demo tenant with sample inventory
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VELOS INVENTORY - Schema Migration & Demo Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Supplier{},
		&models.Customer{},
		&models.Location{},
		&models.Product{},
		&models.Batch{},
		&models.Sale{},
		&models.SaleItem{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.StockMovement{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	email, password, name := getOwnerCredentials()

	var existing models.User
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ Account with email '%s' already exists\n", email)
		os.Exit(1)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	owner := models.User{
		Email:       email,
		Name:        name,
		CompanyName: "Velos Demo Store",
	}
	if err := owner.SetPassword(password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := config.Gorm.Create(&owner).Error; err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}
	log.Println("✓ Demo account created")

	if err := seedInventory(owner); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Tenant Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", owner.ID)
	fmt.Printf("Email: %s\n", owner.Email)
	fmt.Printf("Name:  %s\n", owner.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Browse products at GET /api/v1/products")
	fmt.Println()
}

// seedInventory writes a small but realistic dataset: categories, a
// supplier, products at varied stock levels, a customer and one sale.
func seedInventory(owner models.User) error {
	return config.Gorm.Transaction(func(tx *gorm.DB) error {
		beverages := models.Category{UserID: owner.ID, Name: "Beverages", Description: "Coffee, tea and soft drinks"}
		snacks := models.Category{UserID: owner.ID, Name: "Snacks"}
		if err := tx.Create(&beverages).Error; err != nil {
			return err
		}
		if err := tx.Create(&snacks).Error; err != nil {
			return err
		}

		supplier := models.Supplier{
			UserID:      owner.ID,
			Name:        "Roastery Co",
			ContactName: "Sam Reyes",
			Email:       "orders@roastery.test",
		}
		if err := tx.Create(&supplier).Error; err != nil {
			return err
		}

		warehouse := models.Location{UserID: owner.ID, Name: "Main warehouse"}
		if err := tx.Create(&warehouse).Error; err != nil {
			return err
		}

		threshold := 10
		sku1, sku2, sku3 := "BEV-001", "BEV-002", "SNK-001"
		products := []models.Product{
			{
				UserID: owner.ID, Name: "Espresso Beans 1kg", SKU: &sku1,
				Manufacturer: "Roastery Co", Quantity: 42, Price: 18.50,
				LowStockThreshold: &threshold,
				CategoryID:        &beverages.ID, SupplierID: &supplier.ID,
			},
			{
				UserID: owner.ID, Name: "Cold Brew Concentrate", SKU: &sku2,
				Manufacturer: "Roastery Co", Quantity: 6, Price: 9.75,
				LowStockThreshold: &threshold,
				CategoryID:        &beverages.ID, SupplierID: &supplier.ID,
			},
			{
				UserID: owner.ID, Name: "Sea Salt Crackers", SKU: &sku3,
				Quantity: 0, Price: 3.25,
				CategoryID: &snacks.ID,
			},
		}
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}

		expiry := time.Now().AddDate(0, 6, 0)
		batch := models.Batch{
			UserID:     owner.ID,
			ProductID:  products[0].ID,
			LocationID: &warehouse.ID,
			LotNumber:  "LOT-2026-001",
			Quantity:   42,
			ExpiryDate: &expiry,
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		customer := models.Customer{UserID: owner.ID, Name: "Corner Cafe", Email: "hello@cornercafe.test"}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		sale := models.Sale{
			UserID:      owner.ID,
			CustomerID:  &customer.ID,
			TotalAmount: 2 * products[0].Price,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		item := models.SaleItem{
			SaleID:      sale.ID,
			ProductID:   products[0].ID,
			ProductName: products[0].Name,
			Quantity:    2,
			UnitPrice:   products[0].Price,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		movement := models.StockMovement{
			UserID:    owner.ID,
			ProductID: products[0].ID,
			Change:    -2,
			Type:      models.MovementSale,
			Reason:    "sale " + sale.ID.String(),
		}
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}
		return tx.Model(&products[0]).Update("quantity", products[0].Quantity-2).Error
	})
}

// getOwnerCredentials prompts for the demo account details
func getOwnerCredentials() (email, password, name string) {
	fmt.Println("Enter Demo Account Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) < 8 {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	fmt.Println()
	return email, password, name
}
