package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		log.Fatalf("Error migrating restaurant table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dish{}, &entities.DishIngredientLink{}, &entities.Substitute{}, &entities.CookingStep{}); err != nil {
		log.Fatalf("Error migrating dish tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CustomerProfile{}, &entities.DietaryRestriction{}); err != nil {
		log.Fatalf("Error migrating customer tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuScan{}); err != nil {
		log.Fatalf("Error migrating menu scan table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
