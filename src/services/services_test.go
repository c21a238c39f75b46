package services

import (
	"testing"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the full schema. The
// pool is pinned to one connection so every statement sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.DocumentModel{},
		&models.DocumentPositionModel{},
		&models.DocumentLinkModel{},
		&models.StakeholderModel{},
		&models.ScaleModel{},
		&models.TypeModel{},
		&models.AreaModel{},
		&models.OriginalResourceModel{},
		&models.UserModel{},
	))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// newDocumentService builds a service without the background cache sweeper
// getting in the way of tests.
func newDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db, cache: make(map[string]*CacheEntry)}
}

func createDocument(t *testing.T, s *DocumentService, title string) *models.DocumentModel {
	t.Helper()
	document, err := s.AddDocument(&models.DocumentModel{Title: title})
	require.NoError(t, err)
	return document
}
