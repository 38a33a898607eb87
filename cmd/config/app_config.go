package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/handlers"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/routes"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/middleware"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/storage"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/ai"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/customer"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dish"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/ingredient"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/jwt"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/menu"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/menuscan"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/restaurant"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	aiClient := ai.NewGeminiClient()

	// Repository
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	dishRepository := dish.NewDishRepository(db)
	customerRepository := customer.NewCustomerRepository(db)
	scanRepository := menuscan.NewScanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	restaurantService := restaurant.NewRestaurantService(restaurantRepository)
	resolver := allergen.NewResolver(aiClient)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, restaurantService, resolver)
	dishService := dish.NewDishService(dishRepository, ingredientRepository, restaurantService)
	customerService := customer.NewCustomerService(customerRepository)
	menuService := menu.NewMenuService(
		restaurantRepository,
		restaurantService,
		dishRepository,
		dishService,
		customerService,
		aiClient,
	)
	scanService := menuscan.NewScanService(
		scanRepository,
		dishRepository,
		dishService,
		restaurantService,
		aiClient,
		s3,
	)

	// Handler
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	customerHandler := handlers.NewCustomerHandler(customerService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RestaurantHandler: restaurantHandler,
		IngredientHandler: ingredientHandler,
		DishHandler:       dishHandler,
		MenuHandler:       menuHandler,
		ScanHandler:       scanHandler,
		CustomerHandler:   customerHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
