package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/api/handlers"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/middleware"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	RestaurantHandler handlers.RestaurantHandler
	IngredientHandler handlers.IngredientHandler
	DishHandler       handlers.DishHandler
	MenuHandler       handlers.MenuHandler
	ScanHandler       handlers.ScanHandler
	CustomerHandler   handlers.CustomerHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.CustomerRoute()
	c.RestaurantRoute()
	c.GuestRoute()
}

// CustomerRoute serves diners. The qr token query parameter is the only way
// a menu is addressed; no account is required.
func (c *Config) CustomerRoute() {
	c.App.Get("/", c.MenuHandler.GetCustomerMenu)

	menu := c.App.Group("/api/v1/menu")
	{
		menu.Get("", c.MenuHandler.GetCustomerMenu)
		menu.Get("/dietary", c.MenuHandler.GetDietaryAvailability)
	}

	profile := c.App.Group("/api/v1/profile")
	{
		profile.Put("", c.CustomerHandler.SaveProfile)
		profile.Get("", c.CustomerHandler.GetProfile)
	}
}

// RestaurantRoute serves staff; every route is owner-scoped behind auth.
func (c *Config) RestaurantRoute() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	restaurants := c.App.Group("/api/v1/restaurants", auth)
	{
		restaurants.Post("", c.RestaurantHandler.OnboardRestaurant)
		restaurants.Get("", c.RestaurantHandler.GetRestaurants)
		restaurants.Get("/:restaurant_id", c.RestaurantHandler.GetRestaurant)
		restaurants.Post("/:restaurant_id/accept-terms", c.RestaurantHandler.AcceptTerms)
		restaurants.Post("/:restaurant_id/complete-onboarding", c.RestaurantHandler.CompleteOnboarding)
		restaurants.Get("/:restaurant_id/menu-url", c.RestaurantHandler.GetMenuURL)

		restaurants.Post("/:restaurant_id/ingredients", c.IngredientHandler.AddIngredient)
		restaurants.Get("/:restaurant_id/ingredients", c.IngredientHandler.GetIngredients)
		restaurants.Patch("/:restaurant_id/ingredients/:ingredient_id", c.IngredientHandler.UpdateIngredient)
		restaurants.Delete("/:restaurant_id/ingredients/:ingredient_id", c.IngredientHandler.DeleteIngredient)

		restaurants.Post("/:restaurant_id/dishes", c.DishHandler.AddDish)
		restaurants.Get("/:restaurant_id/dishes", c.DishHandler.GetDishes)
		restaurants.Get("/:restaurant_id/dishes/:dish_id", c.DishHandler.GetDishDetail)
		restaurants.Patch("/:restaurant_id/dishes/:dish_id", c.DishHandler.UpdateDish)
		restaurants.Delete("/:restaurant_id/dishes/:dish_id", c.DishHandler.DeactivateDish)
		restaurants.Get("/:restaurant_id/dishes/:dish_id/allergens", c.DishHandler.GetDishAllergenSummary)

		restaurants.Post("/:restaurant_id/dishes/:dish_id/ingredients", c.DishHandler.AddIngredientLink)
		restaurants.Patch("/:restaurant_id/dishes/:dish_id/ingredients/:link_id", c.DishHandler.UpdateIngredientLink)
		restaurants.Delete("/:restaurant_id/dishes/:dish_id/ingredients/:link_id", c.DishHandler.RemoveIngredientLink)
		restaurants.Post("/:restaurant_id/dishes/:dish_id/ingredients/:link_id/substitutes", c.DishHandler.AddSubstitute)
		restaurants.Delete("/:restaurant_id/dishes/:dish_id/ingredients/:link_id/substitutes/:substitute_id", c.DishHandler.RemoveSubstitute)

		restaurants.Post("/:restaurant_id/dishes/:dish_id/steps", c.DishHandler.AddCookingStep)
		restaurants.Patch("/:restaurant_id/dishes/:dish_id/steps/:step_id", c.DishHandler.UpdateCookingStep)
		restaurants.Delete("/:restaurant_id/dishes/:dish_id/steps/:step_id", c.DishHandler.DeleteCookingStep)

		restaurants.Get("/:restaurant_id/allergen-matrix", c.MenuHandler.GetAllergenMatrix)
		restaurants.Get("/:restaurant_id/export", c.MenuHandler.ExportMenuCSV)
		restaurants.Post("/:restaurant_id/export/email", c.MenuHandler.EmailMenuExport)

		restaurants.Post("/:restaurant_id/menu-scans", c.ScanHandler.UploadMenuPhoto)
		restaurants.Get("/:restaurant_id/menu-scans/:scan_id", c.ScanHandler.GetScan)
		restaurants.Post("/:restaurant_id/menu-scans/:scan_id/confirm", c.ScanHandler.ConfirmScan)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
