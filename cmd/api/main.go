package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/agromarket/agromarket-backend/internal/config"
	"github.com/agromarket/agromarket-backend/internal/modules/auth"
	"github.com/agromarket/agromarket-backend/internal/modules/catalog"
	"github.com/agromarket/agromarket-backend/internal/modules/mailer"
	"github.com/agromarket/agromarket-backend/internal/modules/order"
	"github.com/agromarket/agromarket-backend/internal/modules/stats"
	"github.com/agromarket/agromarket-backend/internal/modules/user"
	"github.com/agromarket/agromarket-backend/internal/modules/vendor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	secret := []byte(cfg.JWTSecret)
	authMW := auth.Middleware(secret)
	adminOnly := auth.RequireRole(string(user.RoleAdmin))

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router, authMW)

	authService := auth.NewService(user.NewAccountSource(userRepo), secret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Vendors & applications ──────────────────────────────
	mail := mailer.New(cfg.MailFunctionURL)
	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo, userRepo, mail)
	vendor.NewHandler(vendorService).RegisterRoutes(router, authMW, adminOnly)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router, authMW)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, userRepo)
	order.NewHandler(orderService).RegisterRoutes(router, authMW)

	// ── Vendor sales & statistics ───────────────────────────
	statsService := stats.NewService(orderRepo, catalogRepo)
	stats.NewHandler(statsService).RegisterRoutes(router, authMW)

	// ── Start Server ────────────────────────────────────────
	fmt.Printf("AgroMarket API server starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
