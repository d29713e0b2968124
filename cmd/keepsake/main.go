package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mkendrick/keepsake/internal/api"
	"github.com/mkendrick/keepsake/internal/cli"
	"github.com/mkendrick/keepsake/internal/db"
	"github.com/mkendrick/keepsake/internal/mail"
	"github.com/mkendrick/keepsake/internal/services"
)

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "keepsake.db"))

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		username := ""
		if len(os.Args) > 2 {
			username = os.Args[2]
		}
		if err := cli.RunResetPasswordCommand(dbPath, username); err != nil {
			log.Fatalf("reset-password failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	port, err := resolvePort()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	sweepHour := resolveSweepHour()
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	sender := mail.NewCourierFromEnv()

	handler, err := api.NewHandler(database, secretKey, filepath.Join("internal", "templates"), location, sender, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Keepsake",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	app.Static("/static", filepath.Join("web", "static"))
	api.RegisterRoutes(app, handler)

	sweeper := services.NewSweeper(db.NewContactRepository(database), sender, location, sweepHour)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	sweeper.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Keepsake listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secret := os.Getenv("SECRET_KEY")
	switch secret {
	case "":
		return "", errors.New("SECRET_KEY must be set")
	case "change_me_in_production", "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY still uses a placeholder value")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func resolvePort() (string, error) {
	port := getEnv("PORT", "8080")
	number, err := strconv.Atoi(port)
	if err != nil || number < 1 || number > 65535 {
		return "", fmt.Errorf("invalid PORT %q", port)
	}
	return port, nil
}

func resolveSweepHour() int {
	raw := getEnv("SWEEP_HOUR", "8")
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < 0 || hour > 23 {
		log.Printf("invalid SWEEP_HOUR %q, falling back to 8", raw)
		return 8
	}
	return hour
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "keepsake_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
