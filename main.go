package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YuvarajaDev/NoeonApi/config"
	"github.com/YuvarajaDev/NoeonApi/handlers/health"
	"github.com/YuvarajaDev/NoeonApi/handlers/leads"
	"github.com/YuvarajaDev/NoeonApi/migrations"
	"github.com/YuvarajaDev/NoeonApi/notify"
	"github.com/YuvarajaDev/NoeonApi/store"
)

func main() {
	cfg := config.Load()

	var db *gorm.DB
	var leadStore *store.LeadStore
	if cfg.PersistenceEnabled {
		var err error
		db, err = store.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := migrations.MigrateLeads(db); err != nil {
			log.Fatalf("Failed to migrate leads table: %v", err)
		}
		leadStore = store.NewLeadStore(db)
	} else {
		log.Println("Persistence disabled: running in notification-only mode")
	}

	dispatcher := notify.NewDispatcher(notify.NewMailer(cfg), notify.NewSMSSender(cfg))

	r := newRouter(cfg, db, leadStore, dispatcher)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Neon Computer Education server running on port %s", cfg.Port)
		log.Printf("API available at http://localhost:%s/api", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Termination signal received: closing HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	// Drain the connection pool. In-flight notification goroutines are
	// not awaited: they run to completion or failure on their own.
	if db != nil {
		if err := store.Close(db); err != nil {
			log.Printf("Closing database pool: %v", err)
		} else {
			log.Println("Database pool closed")
		}
	}
}

func newRouter(cfg config.Config, db *gorm.DB, leadStore *store.LeadStore, notifier leads.Notifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		body := gin.H{"success": false, "message": "Internal server error"}
		if cfg.Development {
			body["error"] = fmt.Sprint(err)
		}
		c.JSON(http.StatusInternalServerError, body)
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	health.New(db).RegisterRoutes(api)
	leads.New(leadStore, notifier).RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}
