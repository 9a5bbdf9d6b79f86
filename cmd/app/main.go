package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/cmd/fx/account_fx"
	"wayfarer/cmd/fx/activity_fx"
	"wayfarer/cmd/fx/budget_fx"
	"wayfarer/cmd/fx/city_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/db_fx"
	"wayfarer/cmd/fx/expense_fx"
	"wayfarer/cmd/fx/share_fx"
	"wayfarer/cmd/fx/stop_fx"
	"wayfarer/cmd/fx/trip_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/internal/infra"
	"wayfarer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		city_fx.Module,
		trip_fx.Module,
		stop_fx.Module,
		activity_fx.Module,
		expense_fx.Module,
		budget_fx.Module,
		share_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) {
	if err := infra.MigrateSchemas(db); err != nil {
		log.Fatalf("Failed to migrate database schemas: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	expenseController *controllers.ExpenseController,
	budgetController *controllers.BudgetController,
	publicController *controllers.PublicController,
	cityController *controllers.CityController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController,
		tripController,
		stopController,
		activityController,
		expenseController,
		budgetController,
		publicController,
		cityController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	expenseController *controllers.ExpenseController,
	budgetController *controllers.BudgetController,
	publicController *controllers.PublicController,
	cityController *controllers.CityController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), authController.Me)

	cityGroup := r.Group("/cities")
	cityGroup.GET("", cityController.ListCities)
	cityGroup.GET("/:cityId/attractions", cityController.ListAttractions)

	tripGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripGroup.GET("", tripController.ListTrips)
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("/:tripId", tripController.GetTrip)
	tripGroup.PATCH("/:tripId", tripController.UpdateTrip)
	tripGroup.DELETE("/:tripId", tripController.DeleteTrip)
	tripGroup.GET("/:tripId/timeline", tripController.GetTimeline)
	tripGroup.GET("/:tripId/stops", stopController.ListStops)
	tripGroup.POST("/:tripId/stops", stopController.CreateStop)
	tripGroup.GET("/:tripId/expenses", expenseController.ListExpenses)
	tripGroup.POST("/:tripId/expenses", expenseController.CreateExpense)

	stopGroup := r.Group("/stops", middleware.JWTAuthMiddleware())
	stopGroup.PATCH("/:stopId", stopController.UpdateStop)
	stopGroup.DELETE("/:stopId", stopController.DeleteStop)
	stopGroup.GET("/:stopId/activities", activityController.ListActivities)
	stopGroup.POST("/:stopId/activities", activityController.CreateActivity)

	activityGroup := r.Group("/activities", middleware.JWTAuthMiddleware())
	activityGroup.PATCH("/:activityId", activityController.UpdateActivity)
	activityGroup.DELETE("/:activityId", activityController.DeleteActivity)

	expenseGroup := r.Group("/expenses", middleware.JWTAuthMiddleware())
	expenseGroup.DELETE("/:expenseId", expenseController.DeleteExpense)

	budgetGroup := r.Group("/budget", middleware.JWTAuthMiddleware())
	budgetGroup.GET("/trips/:tripId", budgetController.GetBudgetSummary)

	r.POST("/share/trips/:tripId", middleware.JWTAuthMiddleware(), publicController.ShareTrip)
	r.GET("/public/:shareId", publicController.GetPublicTrip)
	r.POST("/public/:shareId/copy", middleware.JWTAuthMiddleware(), publicController.CopyPublicTrip)
}
