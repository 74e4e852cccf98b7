package database

import (
	"fmt"
	"log"

	"procurement-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global database handle, set once at startup when the
// mysql backend is selected.
var DB *gorm.DB

// ConnectDatabase opens the MySQL connection and migrates the orders
// table. The process exits when the database is unreachable.
func ConnectDatabase(dsn string) {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("✅ Database connected successfully!")

	if err := DB.AutoMigrate(&models.Order{}); err != nil {
		log.Fatalf("❌ Failed to migrate the database: %v\n", err)
	}
	fmt.Println("✅ Database migrated successfully!")
}
