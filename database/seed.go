package database

import (
	"log"
	"time"

	"github.com/anshurajlive/Assetivo/models"
)

// SeedDb inserts a demo owner with one property and tenant so a fresh
// install has something to look at. Runs only against an empty users table.
func SeedDb() {
	db := Database.Db

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Seed skipped, could not count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	owner := models.User{
		AuthUID: "sqrNTmh4o7cSeUgowbFLfCdyFdN2",
		Email:   "owner@example.com",
		Name:    "Demo Owner",
		Role:    models.RoleOwner,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Printf("Seed failed creating user: %v", err)
		return
	}

	lat := 37.7749
	lng := -122.4194
	property := models.Property{
		OwnerID:            owner.ID,
		Name:               "Sunset Villa",
		Type:               models.IndependentHouse,
		Address:            "123 Main Street, Springfield",
		Size:               2500,
		Latitude:           &lat,
		Longitude:          &lng,
		CurrentMarketValue: 450000,
		Status:             models.Rented,
	}
	if err := db.Create(&property).Error; err != nil {
		log.Printf("Seed failed creating property: %v", err)
		return
	}

	tenant := models.Tenant{
		PropertyID:     property.ID,
		Name:           "John Doe",
		Phone:          "+1234567890",
		LeaseStartDate: time.Now().AddDate(0, -6, 0),
		LeaseEndDate:   time.Now().AddDate(0, 6, 0),
		MonthlyRent:    1500,
	}
	if err := db.Create(&tenant).Error; err != nil {
		log.Printf("Seed failed creating tenant: %v", err)
		return
	}

	log.Println("Database seeded with demo data.")
}
