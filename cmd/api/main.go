package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"tripmarket/internal/database"
	"tripmarket/internal/domain/auth"
	"tripmarket/internal/domain/booking"
	"tripmarket/internal/domain/catalog"
	"tripmarket/internal/domain/guestbooking"
	"tripmarket/internal/domain/wallet"
	"tripmarket/internal/middleware"
	jwtsvc "tripmarket/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(secret, 24*time.Hour)

	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogRepo := catalog.NewRepository(db)
	catalogService := catalog.NewService(catalogRepo, catalog.NewCache(redisClient()))
	catalogHandler := catalog.NewHandler(catalogService)

	walletService := wallet.NewService(db)
	walletHandler := wallet.NewHandler(walletService)

	bookingRepo := booking.NewRepository(db)
	bookingService := booking.NewService(bookingRepo, walletService)
	bookingHandler := booking.NewHandler(bookingService)

	guestRepo := guestbooking.NewRepository(db)
	guestService := guestbooking.NewService(guestRepo, catalogService)
	guestHandler := guestbooking.NewHandler(guestService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)
		catalog.RegisterPublicRoutes(v1, catalogHandler)

		protected := v1.Group("/")
		protected.Use(middleware.AuthRequired(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
			wallet.RegisterRoutes(protected, walletHandler)
			booking.RegisterRoutes(protected, bookingHandler)
			guestbooking.RegisterRoutes(protected, guestHandler)
		}

		// payment claims, refunds, status transitions and generic booking
		// management
		ops := v1.Group("/")
		ops.Use(middleware.AuthRequired(j), middleware.RequireRole("admin", "operations"))
		{
			booking.RegisterPrivilegedRoutes(ops, bookingHandler)
			guestbooking.RegisterOpsRoutes(ops, guestHandler)
		}

		// cross-user sightseeing booking views
		backoffice := v1.Group("/")
		backoffice.Use(middleware.AuthRequired(j), middleware.RequireRole("admin", "operations", "sales"))
		{
			guestbooking.RegisterBackOfficeRoutes(backoffice, guestHandler)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(j), middleware.AdminOnly())
		{
			auth.RegisterAdminRoutes(admin, authHandler)
			catalog.RegisterAdminRoutes(admin, catalogHandler)
			wallet.RegisterAdminRoutes(admin, walletHandler)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// redisClient builds the optional catalog cache client. An empty REDIS_URL
// or an unreachable server disables caching rather than failing startup.
func redisClient() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("redis_disabled reason=%q", err)
		return nil
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis_disabled reason=%q", err)
		return nil
	}
	return client
}
