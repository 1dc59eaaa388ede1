package main

import (
	"context"
	"log"
	"os"

	"landingcms/internal/config"
	"landingcms/internal/db"
	"landingcms/internal/model"
	"landingcms/internal/repository"
	"landingcms/internal/service"
)

// Destructive reset utility: drops all tables, re-runs migrations and
// reseeds the bootstrap super admin and default settings.
func main() {
	if os.Getenv("RESET_CONFIRM") != "true" {
		log.Fatal("refusing to reset the database: set RESET_CONFIRM=true to proceed")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	log.Println("dropping tables...")
	tables := []interface{}{
		&model.Article{},
		&model.Setting{},
		&model.Contact{},
		&model.User{},
	}
	for _, table := range tables {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			log.Printf("warning: drop table failed (may not exist): %v", err)
		}
	}

	log.Println("running migrations...")
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Setting{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)

	authService := service.NewAuthService(userRepo, nil)
	settingsService := service.NewSettingsService(settingRepo, nil)

	ctx := context.Background()
	if err := authService.EnsureSuperAdmin(ctx, cfg.SuperAdminUsername, cfg.SuperAdminEmail, cfg.SuperAdminPassword); err != nil {
		log.Fatalf("seed super admin: %v", err)
	}
	if err := settingsService.EnsureDefaults(ctx); err != nil {
		log.Fatalf("seed settings: %v", err)
	}

	log.Println("reset completed")
}
