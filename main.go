package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentals-api/config"
	"rentals-api/controllers"
	"rentals-api/domain"
	"rentals-api/middleware"
	"rentals-api/publishers"
	"rentals-api/repositories"
	"rentals-api/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// ============================================
	// 1. CONFIGURACIÓN - Leer variables de entorno
	// ============================================
	cfg := config.LoadConfig()

	log.Println("🔧 Configuración cargada:")
	log.Printf("   - DB Host: %s:%s", cfg.DBHost, cfg.DBPort)
	log.Printf("   - DB Name: %s", cfg.DBName)
	log.Printf("   - Mongo: %s/%s", cfg.MongoURI, cfg.MongoDatabase)
	log.Printf("   - Memcached: %s", cfg.MemcachedHost)

	// ============================================
	// 2. CONECTAR A MYSQL (store de usuarios)
	// ============================================
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("📡 Conectando a MySQL...")
	// TranslateError para que el índice único de email salga como
	// gorm.ErrDuplicatedKey y el repo lo mapee a ErrConflict
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	log.Println("✅ Conexión a MySQL exitosa")

	// ============================================
	// 3. AUTO-MIGRAR LAS TABLAS
	// ============================================
	log.Println("🔄 Ejecutando migraciones...")
	err = db.AutoMigrate(&domain.User{})
	if err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Tablas creadas/actualizadas")

	// ============================================
	// 4. CONECTAR A MONGODB (store de reservas)
	// ============================================
	log.Println("📡 Conectando a MongoDB...")
	mongoCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		log.Fatal("❌ Failed to ping MongoDB:", err)
	}
	log.Println("✅ Conexión a MongoDB exitosa")

	// ============================================
	// 5. CONECTAR A RABBITMQ (eventos de reservas)
	// ============================================
	log.Println("📡 Conectando a RabbitMQ...")
	publisher, err := publishers.NewRabbitMQPublisher(cfg.RabbitMQURL, "bookings_queue")
	if err != nil {
		log.Fatal("❌ Failed to connect to RabbitMQ:", err)
	}
	log.Println("✅ Conexión a RabbitMQ exitosa")

	// ============================================
	// 6. INICIALIZAR CAPAS (Patrón MVC)
	// ============================================
	log.Println("🏗️  Inicializando capas...")

	// Repositories: acceso a datos
	userRepo := repositories.NewUserRepository(db)
	bookingRepo := repositories.NewBookingRepository(mongoClient, cfg.MongoDatabase)
	propertyRepo := repositories.NewPropertyRepository()
	reviewRepo := repositories.NewReviewRepository()
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)

	// Services: lógica de negocio
	sessionRegistry := services.NewSessionRegistry(userRepo)
	bookingService := services.NewBookingService(bookingRepo, propertyRepo, reviewRepo, publisher)
	propertyService := services.NewPropertyService(propertyRepo, cacheRepo)
	reviewService := services.NewReviewService(reviewRepo)

	// Controllers: manejan HTTP
	authController := controllers.NewAuthController(sessionRegistry)
	bookingController := controllers.NewBookingController(bookingService)
	propertyController := controllers.NewPropertyController(propertyService)
	reviewController := controllers.NewReviewController(reviewService)

	log.Println("✅ Capas inicializadas")

	// ============================================
	// 7. CONFIGURAR GIN (Framework web)
	// ============================================
	router := gin.Default()

	// CORS - Permitir requests desde el frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Session-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// ============================================
	// 8. DEFINIR RUTAS (Endpoints)
	// ============================================
	log.Println("🛣️  Configurando rutas...")

	// Rutas PÚBLICAS (sin autenticación)
	router.GET("/health", authController.HealthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/signin", authController.SignIn)
		auth.POST("/signup", authController.SignUp)
		auth.POST("/guest", authController.ContinueAsGuest)
		auth.POST("/signout", authController.SignOut)
		auth.POST("/clear-error", authController.ClearError)
		auth.GET("/session", authController.GetSession)
	}

	router.GET("/properties", propertyController.SearchProperties)
	router.GET("/properties/:id", propertyController.GetPropertyByID)
	router.GET("/properties/:id/pricing", bookingController.GetPricing)
	router.GET("/reviews", reviewController.GetReviews)

	// Rutas PROTEGIDAS (requieren JWT; los invitados también tienen token)
	bookings := router.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("", bookingController.CreateBooking)
		bookings.GET("", bookingController.GetBookings)
	}

	log.Println("✅ Rutas configuradas:")
	log.Println("   - GET  /health")
	log.Println("   - POST /auth/signin")
	log.Println("   - POST /auth/signup")
	log.Println("   - POST /auth/guest")
	log.Println("   - POST /auth/signout")
	log.Println("   - POST /auth/clear-error")
	log.Println("   - GET  /auth/session")
	log.Println("   - GET  /properties")
	log.Println("   - GET  /properties/:id")
	log.Println("   - GET  /properties/:id/pricing")
	log.Println("   - GET  /reviews")
	log.Println("   - POST /bookings (JWT)")
	log.Println("   - GET  /bookings (JWT)")

	// ============================================
	// 9. ARRANCAR EL SERVIDOR (con graceful shutdown)
	// ============================================
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("🚀 =======================================")
		log.Printf("🚀 Rentals API corriendo en puerto %s", cfg.Port)
		log.Println("🚀 =======================================")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Esperar SIGINT/SIGTERM y apagar ordenadamente: primero el servidor
	// HTTP (con timeout), después el publisher de RabbitMQ
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Apagando Rentals API...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Error shutting down server: %v", err)
	} else {
		log.Println("✅ Servidor HTTP apagado")
	}

	publisher.Close()
	log.Println("✅ Conexión a RabbitMQ cerrada")

	log.Println("✅ Rentals API apagada")
}
