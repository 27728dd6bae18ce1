package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func LoadEnv() {
	_ = godotenv.Load()
}

// databaseDSN merakit DSN MySQL dari environment. parseTime wajib aktif
// karena kolom created_at/updated_at dibaca sebagai time.Time.
func databaseDSN() string {
	params := os.Getenv("DB_PARAMS")
	if params == "" {
		params = "charset=utf8mb4&parseTime=true&loc=Asia%2FJakarta"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"), params)
}

func ConnectDB() *gorm.DB {
	LoadEnv()

	db, err := gorm.Open(mysql.Open(databaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	DB = db
	log.Println("✅ Connected to database:", os.Getenv("DB_NAME"))
	return DB
}
