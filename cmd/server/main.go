package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"taskboard/internal/application/services"
	"taskboard/internal/config"
	"taskboard/internal/delivery/handler"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
	"taskboard/internal/infrastructure"
	gormdb "taskboard/internal/infrastructure/db/gorm"
)

func main() {
	cfg := config.MustLoad()

	db, err := gormdb.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("❌ failed to connect to database: %v", err)
	}

	userRepo := gormdb.NewUserRepository(db)
	taskRepo := gormdb.NewTaskRepository(db)

	var tokenStore infrastructure.TokenStore
	if cfg.Redis.Addr != "" {
		tokenStore = infrastructure.NewRedisTokenStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	} else {
		tokenStore = infrastructure.NewMemoryTokenStore()
	}

	jwtService := infrastructure.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	loginLimiter := infrastructure.NewLoginLimiter(cfg.Auth.LoginWindow, cfg.Auth.LoginMaxAttempts)

	userService := services.NewUserService(userRepo, taskRepo, jwtService, tokenStore, cfg.Auth.TokenTTL, loginLimiter)
	taskService := services.NewTaskService(taskRepo)

	if err := seedAdmin(context.Background(), userRepo, cfg); err != nil {
		log.Fatalf("❌ failed to seed admin user: %v", err)
	}

	h := handler.NewHandler(userService, taskService, jwtService, tokenStore)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h.Register(e, rate.NewLimiter(rate.Limit(20), 40))

	log.Printf("🚀 server running on :%s", cfg.Server.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Server.Port))
}

// seedAdmin makes sure a fresh deployment has a working admin account.
func seedAdmin(ctx context.Context, userRepo repositories.UserRepository, cfg *config.Config) error {
	if cfg.Auth.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	existing, err := userRepo.FindByUsername(ctx, cfg.Auth.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	admin := entities.NewUser(cfg.Auth.AdminUsername, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	admin.Role = entities.RoleAdmin
	if err := admin.HashPassword(); err != nil {
		return err
	}

	validated, err := entities.NewValidatedUser(admin)
	if err != nil {
		return err
	}

	if _, err := userRepo.Create(ctx, validated); err != nil {
		return err
	}
	log.Printf("seeded admin user %q", cfg.Auth.AdminUsername)
	return nil
}
