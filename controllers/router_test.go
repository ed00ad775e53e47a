package controllers_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketing-tracker/controllers"
	"marketing-tracker/models"
	"marketing-tracker/routes"
	"marketing-tracker/services"
)

// memoryStore is an in-memory ObjectStore for handler tests.
type memoryStore struct {
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	key := "target-lists/test-" + filename
	m.objects[key] = data
	return key, nil
}

func (m *memoryStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "https://example-bucket.s3.amazonaws.com/" + key + "?X-Amz-Expires=300", nil
}

// newTestRouter wires the full route table over an in-memory database, the
// same way main does at startup.
func newTestRouter(t *testing.T) (*mux.Router, *gorm.DB, *memoryStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))

	store := newMemoryStore()

	router := mux.NewRouter()
	router.HandleFunc("/", controllers.Index()).Methods("GET")
	routes.ClientRoutes(router, services.NewClientService(db))
	routes.TargetListRoutes(router, services.NewTargetListService(db, store))
	routes.ContractRoutes(router,
		services.NewContractService(db),
		services.NewCampaignService(db),
		services.NewProgramService(db),
		services.NewPlacementService(db),
	)
	routes.CampaignRoutes(router, services.NewCampaignService(db))
	routes.ProgramRoutes(router, services.NewProgramService(db))
	routes.PlacementRoutes(router, services.NewPlacementService(db))
	return router, db, store
}
