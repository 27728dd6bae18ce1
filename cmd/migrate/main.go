package main

import (
	"log"

	"github.com/garudaofficial24/BillMaster-Garuda/config"
	"github.com/garudaofficial24/BillMaster-Garuda/models"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.Company{},
		&models.Letter{},
		&models.Signatory{},
		&models.Activity{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
