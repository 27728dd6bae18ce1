package main

import (
	"fmt"
	"log"

	"github.com/garudaofficial24/BillMaster-Garuda/config"
	"github.com/garudaofficial24/BillMaster-Garuda/routes"
	"github.com/garudaofficial24/BillMaster-Garuda/utils/events"
	"github.com/garudaofficial24/BillMaster-Garuda/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	config.ConnectDB()
	storage.InitS3Client()
	events.StartAuditLog()

	srvCfg := config.LoadServerConfig()

	app := fiber.New(fiber.Config{
		// Upload tanda tangan dibatasi 2MB, beri ruang untuk overhead multipart
		BodyLimit: 5 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(srvCfg),
	}))

	routes.Register(app)

	addr := fmt.Sprintf(":%d", srvCfg.Port)
	log.Println("🚀 API running on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}

func corsOrigins(cfg config.ServerConfig) string {
	if cfg.CORSOrigins == "" {
		return "*"
	}
	return cfg.CORSOrigins
}
