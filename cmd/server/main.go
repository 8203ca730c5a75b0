package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spaceflow/internal/api"
	"spaceflow/internal/api/middleware"
	"spaceflow/internal/database"
	"spaceflow/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv})

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	authService := appFactory.GetAuthService()
	listingService := appFactory.GetListingService()
	favoriteService := appFactory.GetFavoriteService()
	reviewService := appFactory.GetReviewService()
	searchService := appFactory.GetSearchService()

	authHandler := api.NewAuthHandler(authService, log)
	listingHandler := api.NewListingHandler(listingService, authService, log)
	favoriteHandler := api.NewFavoriteHandler(favoriteService, authService, log)
	reviewHandler := api.NewReviewHandler(reviewService, authService, log)
	searchHandler := api.NewSearchHandler(searchService, log)
	auditLogHandler := api.NewAuditLogHandler(appFactory.GetAuditLogRepository(), log)
	healthHandler := api.NewHealthHandler(appFactory, log)

	mux := http.NewServeMux()

	authHandler.RegisterRoutes(mux)
	listingHandler.RegisterRoutes(mux)
	favoriteHandler.RegisterRoutes(mux)
	reviewHandler.RegisterRoutes(mux)
	searchHandler.RegisterRoutes(mux)
	auditLogHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("SpaceFlow API'ye Hoş Geldiniz!"))
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: middleware.MetricsMiddleware(mux),
	}

	go func() {
		log.Info("HTTP sunucusu başlatılıyor", map[string]interface{}{"port": cfg.Server.Port})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP sunucusu başlatılamadı", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Sunucu kapatılıyor...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Sunucu kapatılırken hata oluştu", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Sunucu başarıyla kapatıldı", map[string]interface{}{})
}
