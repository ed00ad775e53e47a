package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"marketing-tracker/configs"
	"marketing-tracker/controllers"
	"marketing-tracker/middleware"
	"marketing-tracker/routes"
	"marketing-tracker/services"
	"marketing-tracker/storage"
)

func main() {
	configs.InitLogger()
	logger := configs.LogWithContext("marketing-tracker", "startup")

	logger.Info("Starting marketing tracker service initialization")

	configs.LoadEnv()

	db, err := configs.ConnectDatabase()
	if err != nil {
		logger.Fatal("Failed to connect to database: ", err)
		return
	}

	store, err := buildObjectStore(logger)
	if err != nil {
		logger.Fatal("Failed to initialize object storage: ", err)
		return
	}

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)

	logger.Info("Middleware configured")

	registerRoutes(router, db, store, logger)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Ready")
	}).Methods("GET")

	port := configs.EnvPort()

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      http.MaxBytesHandler(router, configs.EnvMaxContentLength()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Marketing tracker service started", " port ", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: ", err)
	} else {
		logger.Info("Server shutdown complete")
	}
}

// buildObjectStore wires the S3-backed store. Without a bucket the store is
// still constructed; uploads and downloads then surface the configuration
// error as a flash message instead of failing startup.
func buildObjectStore(logger *logrus.Entry) (storage.ObjectStore, error) {
	bucket := configs.EnvS3Bucket()
	if bucket == "" {
		logger.Warn("S3_BUCKET_NAME not set; target list uploads will be rejected until configured")
		return storage.NewS3Store(nil, "", configs.EnvS3Prefix(), ""), nil
	}

	client, err := configs.NewS3Client(context.Background())
	if err != nil {
		return nil, err
	}
	logger.Info("Object storage configured", " bucket ", bucket)
	return storage.NewS3Store(client, bucket, configs.EnvS3Prefix(), configs.EnvS3SSEKMSKeyID()), nil
}

func registerRoutes(router *mux.Router, db *gorm.DB, store storage.ObjectStore, logger *logrus.Entry) {
	clients := services.NewClientService(db)
	contracts := services.NewContractService(db)
	campaigns := services.NewCampaignService(db)
	programs := services.NewProgramService(db)
	placements := services.NewPlacementService(db)
	targetLists := services.NewTargetListService(db, store)

	router.HandleFunc("/", controllers.Index()).Methods("GET")

	routes.ClientRoutes(router, clients)
	logger.Info("Client routes registered")

	routes.TargetListRoutes(router, targetLists)
	logger.Info("Target list routes registered")

	routes.ContractRoutes(router, contracts, campaigns, programs, placements)
	logger.Info("Contract routes registered")

	routes.CampaignRoutes(router, campaigns)
	logger.Info("Campaign routes registered")

	routes.ProgramRoutes(router, programs)
	logger.Info("Program routes registered")

	routes.PlacementRoutes(router, placements)
	logger.Info("Placement routes registered")
}
