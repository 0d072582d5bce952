package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/alesxandro/barfesta-app/config"
	"github.com/alesxandro/barfesta-app/database"
	"github.com/alesxandro/barfesta-app/middlewares"
	"github.com/alesxandro/barfesta-app/models"
	"github.com/alesxandro/barfesta-app/router"
	"github.com/alesxandro/barfesta-app/services"
	"github.com/alesxandro/barfesta-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: arquivo .env não encontrado: %v", err)
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Configuração inválida: %v", err)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}

	masterDB, err := config.InitMasterDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Erro ao conectar com o banco mestre: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	provisioner := services.NewTenantProvisioner(masterDB)
	r := router.SetupRouter(db, provisioner)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Servidor rodando na porta %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Unit{},
		&models.Table{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.Rental{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Erro no AutoMigrate: %v", err)
	}

	if err := database.SeedAdminUser(db); err != nil {
		utils.ErrorLogger.Printf("Erro ao criar usuário admin: %v", err)
	} else {
		utils.InfoLogger.Println("AutoMigrate concluído.")
	}
}
