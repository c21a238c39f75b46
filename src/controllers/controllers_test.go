package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter wires the controllers against an in-memory database with
// no auth middleware: these tests exercise the HTTP contract, not the gate.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.DocumentModel{},
		&models.DocumentPositionModel{},
		&models.DocumentLinkModel{},
		&models.StakeholderModel{},
		&models.AreaModel{},
		&models.OriginalResourceModel{},
	))

	documentService := services.NewDocumentService(db)
	linkService := services.NewLinkService(db, documentService)
	georeferenceService := services.NewGeoreferenceService(db, documentService)

	documentController := NewDocumentController(documentService)
	linkController := NewLinkController(linkService)
	georeferenceController := NewGeoreferenceController(georeferenceService)

	router := gin.New()
	router.GET("/documents/:id", documentController.GetDocumentById)
	router.POST("/documents", documentController.AddDocument)
	router.DELETE("/documents/:id", documentController.DeleteDocument)
	router.GET("/documents/:id/links", linkController.GetDocumentLinks)
	router.POST("/links", linkController.LinkDocuments)
	router.PUT("/links", linkController.UpdateLink)
	router.DELETE("/links", linkController.DeleteLink)
	router.PUT("/documents/:id/georeference", georeferenceController.UpdateDocumentGeoreference)
	router.GET("/areas", georeferenceController.GetAreaNames)
	router.GET("/locations", georeferenceController.GetDocumentLocations)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func TestAddDocumentEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/documents", gin.H{
		"title":        "Plan A",
		"stakeholders": "Kommun",
		"scale":        "1:1000",
		"issuanceDate": "2023-01-01",
		"type":         "Informative",
	})
	require.Equal(t, 201, recorder.Code)

	payload := decode(t, recorder)
	assert.Equal(t, "Document added successfully.", payload["message"])
	assert.NotZero(t, payload["id"])
}

func TestAddDocumentEndpointEmptyTitle(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/documents", gin.H{"title": "   "})
	assert.Equal(t, 400, recorder.Code)
}

func TestLinkEndpointConflictIs409(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.DocumentModel{Title: "A"}).Error)
	require.NoError(t, db.Create(&models.DocumentModel{Title: "B"}).Error)

	body := gin.H{"idDocument1": 1, "idDocument2": 2, "date": "2024-01-01", "type": "Reference"}

	recorder := doJSON(t, router, http.MethodPost, "/links", body)
	require.Equal(t, 201, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/links", body)
	require.Equal(t, 409, recorder.Code)
	assert.Contains(t, decode(t, recorder)["error"], "already exists")
}

func TestUpdateLinkMissingIs400(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.DocumentModel{Title: "A"}).Error)
	require.NoError(t, db.Create(&models.DocumentModel{Title: "B"}).Error)

	recorder := doJSON(t, router, http.MethodPut, "/links",
		gin.H{"idDocument1": 1, "idDocument2": 2, "date": "2025-01-01", "type": "Citation"})
	assert.Equal(t, 400, recorder.Code)
}

func TestDeleteLinkMissingIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodDelete, "/links",
		gin.H{"idDocument1": 1, "idDocument2": 2, "type": "Reference"})
	assert.Equal(t, 404, recorder.Code)
}

func TestGetDocumentLinksNoLinksMessage(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.DocumentModel{Title: "Lonely"}).Error)

	recorder := doJSON(t, router, http.MethodGet, "/documents/1/links", nil)
	require.Equal(t, 200, recorder.Code)

	payload := decode(t, recorder)
	assert.Equal(t, fmt.Sprintf("Document %d has no links", 1), payload["message"])
	assert.NotContains(t, payload, "links")
}

func TestGeoreferenceEndpointValidationIs400(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.DocumentModel{Title: "Doc"}).Error)

	recorder := doJSON(t, router, http.MethodPut, "/documents/1/georeference", gin.H{})
	require.Equal(t, 400, recorder.Code)
	assert.Equal(t, "Georeferencing data is required", decode(t, recorder)["error"])
}

func TestEmptyAreaAndLocationListsAre404(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/areas", nil)
	assert.Equal(t, 404, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/locations", nil)
	assert.Equal(t, 404, recorder.Code)
}

func TestDeleteDocumentTwiceSecondIs400(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.DocumentModel{Title: "Doomed"}).Error)

	recorder := doJSON(t, router, http.MethodDelete, "/documents/1", nil)
	require.Equal(t, 200, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/documents/1", nil)
	assert.Equal(t, 400, recorder.Code)
}
