package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type ImportResult struct {
	Imported int
	Errors   []string
}

type DocumentService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	service := &DocumentService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *DocumentService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *DocumentService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *DocumentService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *DocumentService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// invalidateDocumentCaches drops every cached view touched by a write to
// the given document. Called from the link and georeference services too,
// since they mutate document rows.
func (s *DocumentService) invalidateDocumentCaches(id int) {
	s.invalidateCache(fmt.Sprintf("document_%d", id))
	s.invalidateCache("all_documents")
}

// ======================= DOCUMENTS =======================

func (s *DocumentService) GetAllDocuments() ([]models.DocumentModel, error) {
	cacheKey := "all_documents"

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]models.DocumentModel), nil
	}

	var documents []models.DocumentModel
	if err := s.db.Find(&documents).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}

	// Save to cache for 5 minutes
	s.setCache(cacheKey, documents, 5*time.Minute)

	return documents, nil
}

func (s *DocumentService) GetDocumentById(id int) (*models.DocumentModel, error) {
	cacheKey := fmt.Sprintf("document_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		document := cached.(models.DocumentModel)
		return &document, nil
	}

	var document models.DocumentModel
	err := s.db.First(&document, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Document not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	// Save to cache for 10 minutes
	s.setCache(cacheKey, document, 10*time.Minute)

	return &document, nil
}

func (s *DocumentService) AddDocument(document *models.DocumentModel) (*models.DocumentModel, error) {
	if strings.TrimSpace(document.Title) == "" {
		return nil, apperrors.NewValidation("Title is required")
	}

	if err := s.db.Create(document).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.invalidateCache("all_documents")
	s.invalidateCache("document_locations")

	return document, nil
}

func (s *DocumentService) UpdateDocument(id int, document *models.DocumentModel) (*models.DocumentModel, error) {
	if id <= 0 {
		return nil, apperrors.NewValidation("Document id is required")
	}
	if strings.TrimSpace(document.Title) == "" {
		return nil, apperrors.NewValidation("Title is required")
	}

	var existing models.DocumentModel
	err := s.db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Document not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	// Full-row update: a map so that cleared fields are written too
	updates := map[string]interface{}{
		"title":         document.Title,
		"stakeholders":  document.Stakeholders,
		"scale":         document.Scale,
		"issuance_date": document.IssuanceDate,
		"type":          document.Type,
		"connections":   document.Connections,
		"language":      document.Language,
		"pages":         document.Pages,
		"lat":           document.Lat,
		"lon":           document.Lon,
		"area":          document.Area,
		"description":   document.Description,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.invalidateDocumentCaches(id)
	s.invalidateCache("document_locations")

	document.Id = id
	return document, nil
}

// AddDocumentDescription sets the description of an existing document.
func (s *DocumentService) AddDocumentDescription(id int, description string) (*models.DocumentModel, error) {
	if id <= 0 {
		return nil, apperrors.NewValidation("Document id is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidation("Description is required")
	}

	var document models.DocumentModel
	err := s.db.First(&document, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Document not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	if err := s.db.Model(&document).Update("description", description).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}
	document.Description = &description

	s.invalidateDocumentCaches(id)

	return &document, nil
}

func (s *DocumentService) DeleteDocumentById(id int) error {
	if id <= 0 {
		return apperrors.NewValidation("Document id is required")
	}

	// Collect resource file paths first; the files are removed from disk
	// only after the row deletes commit.
	var resources []models.OriginalResourceModel
	if err := s.db.Where("document_id = ?", id).Find(&resources).Error; err != nil {
		return apperrors.NewStorage(err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Links touching this document die with it; the counterpart of
		// each link loses one connection.
		var links []models.DocumentLinkModel
		if err := tx.Where("id_document1 = ? OR id_document2 = ?", id, id).Find(&links).Error; err != nil {
			return err
		}
		for _, link := range links {
			other := link.IdDocument1
			if other == id {
				other = link.IdDocument2
			}
			if err := tx.Model(&models.DocumentModel{}).Where("id = ?", other).
				Update("connections", gorm.Expr("connections - 1")).Error; err != nil {
				return err
			}
		}
		if len(links) > 0 {
			if err := tx.Where("id_document1 = ? OR id_document2 = ?", id, id).
				Delete(&models.DocumentLinkModel{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("document_id = ?", id).Delete(&models.DocumentPositionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", id).Delete(&models.OriginalResourceModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.DocumentModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFound("Document not found")
		}
		return nil
	})
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return apperrors.NewStorage(err)
	}

	for _, resource := range resources {
		if resource.FilePath != "" {
			_ = os.Remove(resource.FilePath)
		}
	}

	s.invalidateDocumentCaches(id)
	s.invalidateCache("document_locations")

	return nil
}

// ======================= DIAGRAM POSITION =======================

func (s *DocumentService) AdjustDocumentPosition(id, x, y int) (*models.DocumentPositionModel, error) {
	if id <= 0 {
		return nil, apperrors.NewValidation("Document id is required")
	}

	if _, err := s.GetDocumentById(id); err != nil {
		return nil, err
	}

	var position models.DocumentPositionModel
	err := s.db.Where("document_id = ?", id).First(&position).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		position = models.DocumentPositionModel{DocumentId: id, X: x, Y: y}
		if err := s.db.Create(&position).Error; err != nil {
			return nil, apperrors.NewStorage(err)
		}
	case err != nil:
		return nil, apperrors.NewStorage(err)
	default:
		if err := s.db.Model(&position).Updates(map[string]interface{}{"x": x, "y": y}).Error; err != nil {
			return nil, apperrors.NewStorage(err)
		}
		position.X = x
		position.Y = y
	}

	return &position, nil
}

func (s *DocumentService) GetDocumentPosition(id int) (*models.DocumentPositionModel, error) {
	var position models.DocumentPositionModel
	err := s.db.Where("document_id = ?", id).First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("No position set for this document")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return &position, nil
}

// ======================= LOOKUPS =======================

// ShowStakeholders returns every known stakeholder name joined into a
// single string. A list would be the natural shape, but existing clients
// consume the aggregate string, so it stays.
func (s *DocumentService) ShowStakeholders() (string, error) {
	var stakeholders []models.StakeholderModel
	if err := s.db.Order("name").Find(&stakeholders).Error; err != nil {
		return "", apperrors.NewStorage(err)
	}

	names := make([]string, 0, len(stakeholders))
	for _, stakeholder := range stakeholders {
		names = append(names, stakeholder.Name)
	}
	return strings.Join(names, ", "), nil
}

func (s *DocumentService) ShowScales() ([]models.ScaleModel, error) {
	var scales []models.ScaleModel
	if err := s.db.Order("name").Find(&scales).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return scales, nil
}

func (s *DocumentService) ShowTypes() ([]models.TypeModel, error) {
	var types []models.TypeModel
	if err := s.db.Order("name").Find(&types).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return types, nil
}

// CheckAndAddStakeholders registers a stakeholder name in the lookup table
// if it is not already there. Idempotent.
func (s *DocumentService) CheckAndAddStakeholders(name string) (string, error) {
	name = strings.TrimSpace(name)

	var existing models.StakeholderModel
	err := s.db.Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		return "Stakeholder already exists", nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&models.StakeholderModel{Name: name}).Error; err != nil {
			return "", apperrors.NewStorage(err)
		}
		return "Stakeholder added", nil
	default:
		return "", apperrors.NewStorage(err)
	}
}

// ======================= EXCEL IMPORT =======================

// ImportDocumentsFromExcel reads documents from the "Documents" sheet, one
// per row: Title, Stakeholders, Scale, IssuanceDate, Type, Language, Pages,
// Lat, Lon, Description. Rows that fail are collected, not fatal.
func (s *DocumentService) ImportDocumentsFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Documents")
	if err != nil {
		return nil, apperrors.NewValidation("Sheet 'Documents' not found")
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		// Header row
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "title") {
			continue
		}

		cell := func(idx int) string {
			if len(row) > idx {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		document := models.DocumentModel{
			Title:        cell(0),
			Stakeholders: cell(1),
			Scale:        cell(2),
			IssuanceDate: cell(3),
			Type:         cell(4),
			Language:     cell(5),
			Pages:        cell(6),
		}

		if raw := cell(7); raw != "" {
			lat, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid latitude %q", i+1, raw))
				continue
			}
			document.Lat = &lat
		}
		if raw := cell(8); raw != "" {
			lon, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid longitude %q", i+1, raw))
				continue
			}
			document.Lon = &lon
		}
		if raw := cell(9); raw != "" {
			document.Description = &raw
		}

		if err := s.db.Create(&document).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		// Keep the stakeholder lookup in sync with what the rows mention
		for _, name := range strings.Split(document.Stakeholders, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			if _, err := s.CheckAndAddStakeholders(name); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: stakeholder %q: %v", i+1, name, err))
			}
		}

		result.Imported++
	}

	s.invalidateCache("all_documents")
	s.invalidateCache("document_locations")

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, apperrors.NewValidation("No documents could be imported")
	}

	return result, nil
}
