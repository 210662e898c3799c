// Package main seeds the database with demo users, funded accounts and a
// starter set of categories for local development.
package main

import (
	"log"
	"strings"

	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email    string
	name     string
	balance  string
	password string
	pin      string
}

func main() {
	config.LoadEnv()

	db, err := repositories.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeds := []seedUser{
		{email: "alice@example.com", name: "Alice Demo", balance: "2500.00", password: "password123", pin: "1234"},
		{email: "bob@example.com", name: "Bob Demo", balance: "150.00", password: "password123", pin: "4321"},
	}

	starterCategories := []models.Category{
		{Name: "Salary", Type: "income"},
		{Name: "Groceries", Type: "expense"},
		{Name: "Rent", Type: "expense"},
		{Name: "Utilities", Type: "expense"},
	}

	for _, seed := range seeds {
		var existing models.User
		if err := db.Where("email = ?", seed.email).First(&existing).Error; err == nil {
			log.Printf("User %s already exists, skipping", seed.email)
			continue
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		pinHash, err := bcrypt.GenerateFromPassword([]byte(seed.pin), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash pin: %v", err)
		}

		user := models.User{
			Email:       seed.email,
			Password:    string(passwordHash),
			Name:        seed.name,
			Role:        "user",
			Status:      "active",
			TransferPIN: string(pinHash),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", seed.email, err)
		}

		account := models.Account{
			UserID:        user.ID,
			AccountNumber: "ACCT-" + strings.ToUpper(uuid.NewString()[:8]),
			AccountType:   "checking",
			Balance:       decimal.RequireFromString(seed.balance),
			Currency:      "USD",
			Status:        models.AccountStatusActive,
		}
		if err := db.Create(&account).Error; err != nil {
			log.Fatalf("Failed to create account for %s: %v", seed.email, err)
		}

		for _, c := range starterCategories {
			category := models.Category{UserID: user.ID, Name: c.Name, Type: c.Type}
			if err := db.Create(&category).Error; err != nil {
				log.Fatalf("Failed to create category %s: %v", c.Name, err)
			}
		}

		log.Printf("Seeded %s with account %s (balance %s)", seed.email, account.AccountNumber, seed.balance)
	}

	log.Println("Seeding complete")
}
