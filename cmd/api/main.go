package main

// @title Carrier Hotel Map API
// @version 1.0.0
// @description Состояние интерактивной карты дата-центров и carrier hotel: выбор здания, адреса, расстояния и hover-оверлеи.
// @description
// @description Основные возможности:
// @description - Выбор и снятие выбора здания кликом по футпринту
// @description - Адрес без дублирования названия и строки "дом улица"
// @description - Расстояния по большому кругу до всех остальных зданий
// @description - Рамка и направляющие при наведении на футпринт, линия и круг при наведении на строку расстояния

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/carrier-hotel-map/docs/swagger"
	"github.com/carrier-hotel-map/internal/config"
	httpDelivery "github.com/carrier-hotel-map/internal/delivery/http"
	"github.com/carrier-hotel-map/internal/delivery/http/handler"
	"github.com/carrier-hotel-map/internal/domain/repository"
	"github.com/carrier-hotel-map/internal/pkg/logger"
	"github.com/carrier-hotel-map/internal/repository/cache"
	"github.com/carrier-hotel-map/internal/repository/geojson"
	"github.com/carrier-hotel-map/internal/repository/postgresosm"
	"github.com/carrier-hotel-map/internal/usecase"
	"github.com/carrier-hotel-map/internal/worker"
	"github.com/carrier-hotel-map/internal/worker/session"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Carrier Hotel Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset_source", cfg.Dataset.Source),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// 3. Building source
	var buildingRepo repository.BuildingRepository
	switch cfg.Dataset.Source {
	case config.DatasetSourceOSM:
		osmDB, err := postgresosm.New(&cfg.OSMDB, log)
		if err != nil {
			log.Fatal("Failed to connect to OSM PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := osmDB.Close(); err != nil {
				log.Error("Failed to close OSM PostgreSQL connection", zap.Error(err))
			}
		}()
		if err := osmDB.Health(ctx); err != nil {
			log.Fatal("OSM PostgreSQL health check failed", zap.Error(err))
		}
		buildingRepo = postgresosm.NewBuildingRepository(osmDB, cfg.Dataset.OSMBuildingTags)
	default:
		buildingRepo = geojson.NewBuildingRepository(cfg.Dataset.Path, log)
	}

	// 4. Optional Redis dataset cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, dataset cache disabled", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
			cacheRepo := cache.NewCacheRepository(redisClient)
			buildingRepo = cache.NewCachedBuildingRepository(buildingRepo, cacheRepo, cfg.Cache.DatasetCacheTTL, log)
		}
	}

	// 5. Load the building catalog once
	catalog, err := usecase.LoadBuildingCatalog(ctx, buildingRepo, cfg.Dataset.StrictIDs, log)
	if err != nil {
		log.Fatal("Failed to load building catalog", zap.Error(err))
	}
	loadedAt := time.Now()

	// 6. Initialize Use Cases
	style := usecase.MapStyleFromConfig(&cfg.Map)
	sessionUC := usecase.NewMapSessionUseCase(catalog, style, log)
	buildingUC := usecase.NewBuildingUseCase(catalog, log)
	statsUC := usecase.NewStatsUseCase(catalog, sessionUC, buildingRepo.Source(), loadedAt, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	buildingHandler := handler.NewBuildingHandler(buildingUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, buildingHandler, sessionHandler, statsHandler)

	// 9. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workers := worker.NewWorkerManager(log)
	workers.Register(session.NewJanitorWorker(sessionUC, cfg.Session.IdleTTL, cfg.Session.SweepInterval, log))
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Int("buildings", catalog.Len()),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
