package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"absensiku_backend/internals/configs"
	database "absensiku_backend/internals/databases"
	exportService "absensiku_backend/internals/features/exports/service"
	registrationService "absensiku_backend/internals/features/registrations/service"
	registrationStore "absensiku_backend/internals/features/registrations/store"
	middlewares "absensiku_backend/internals/middlewares"
	routes "absensiku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan statement_timeout di DB)
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + skema (gagal migrasi = berhenti)
	database.ConnectDB()
	database.TunePool()
	database.MigrateTables()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// 📄 Exporter CSV: satu artefak path tetap, ditimpa tiap export
	exporter := exportService.NewCSVExporter(
		configs.GetEnv("EXPORT_CSV_PATH", "registrations.csv"),
	)

	// 🗂 Store pendaftaran lokal: kalau gagal dibuka, fiturnya saja
	// yang mati — API students/attendance/export tetap hidup
	var regSvc *registrationService.RegistrationService
	regStore, err := registrationStore.Open(configs.GetEnv("REGISTRATION_DB_PATH", "registrations.db"))
	if err != nil {
		log.Printf("❌ Store pendaftaran gagal dibuka: %v", err)
	} else {
		exportURL := configs.GetEnv("EXPORT_URL", "http://localhost:"+port+"/api/export-csv")
		regSvc = registrationService.NewRegistrationService(regStore, exportURL)
	}

	// ✅ Routes
	routes.BaseRoutes(app)
	routes.SetupRoutes(app, database.DB, exporter, regSvc)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB & store lokal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if regStore != nil {
		_ = regStore.Close()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
