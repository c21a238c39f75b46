package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/dtos"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"gorm.io/gorm"
)

// Municipal bounding box for point placements. The values come from the
// extent of the Kiruna municipality; a coordinate exactly on the boundary
// is rejected, only strictly inside counts.
const (
	KirunaLatMin = 67.3564
	KirunaLatMax = 69.0599
	KirunaLonMin = 17.8998
	KirunaLonMax = 23.2867
)

type GeoreferenceService struct {
	db        *gorm.DB
	documents *DocumentService
}

// NewGeoreferenceService creates a new instance of GeoreferenceService.
// Placement updates rewrite document rows, so the document service's
// caches are invalidated through it.
func NewGeoreferenceService(db *gorm.DB, documents *DocumentService) *GeoreferenceService {
	return &GeoreferenceService{db: db, documents: documents}
}

func withinKirunaBounds(lat, lon float64) bool {
	return lat > KirunaLatMin && lat < KirunaLatMax &&
		lon > KirunaLonMin && lon < KirunaLonMax
}

// validateArea rejects serialized geometries that carry no actual shape.
func validateArea(area string) error {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(area), &parsed); err != nil {
		return apperrors.NewValidation("Area must be valid GeoJSON")
	}
	if len(parsed) == 0 {
		return apperrors.NewValidation("Area cannot be an empty GeoJSON object")
	}
	return nil
}

// UpdateDocumentGeoreference sets a document's placement to either a point
// or an area. The one that was not supplied is cleared: exactly one of the
// two is the canonical position source.
func (s *GeoreferenceService) UpdateDocumentGeoreference(id int, geo dtos.GeoreferenceDTO) (*models.DocumentModel, error) {
	if id <= 0 {
		return nil, apperrors.NewValidation("Document id is required")
	}

	hasLat := geo.Lat != nil
	hasLon := geo.Lon != nil
	hasArea := geo.Area != nil && strings.TrimSpace(*geo.Area) != ""

	if !hasLat && !hasLon && !hasArea {
		return nil, apperrors.NewValidation("Georeferencing data is required")
	}
	if hasLat != hasLon {
		return nil, apperrors.NewValidation("Both latitude and longitude are required for a point placement")
	}
	if hasArea {
		if err := validateArea(*geo.Area); err != nil {
			return nil, err
		}
	}
	if hasLat && !withinKirunaBounds(*geo.Lat, *geo.Lon) {
		return nil, apperrors.NewValidation("Coordinates are outside the Kiruna municipality boundaries")
	}

	var document models.DocumentModel
	err := s.db.First(&document, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Document not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	updates := map[string]interface{}{}
	if hasArea {
		updates["area"] = *geo.Area
		updates["lat"] = nil
		updates["lon"] = nil
		document.Area = geo.Area
		document.Lat = nil
		document.Lon = nil
	} else {
		updates["lat"] = *geo.Lat
		updates["lon"] = *geo.Lon
		updates["area"] = nil
		document.Lat = geo.Lat
		document.Lon = geo.Lon
		document.Area = nil
	}

	if err := s.db.Model(&document).Updates(updates).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.documents.invalidateDocumentCaches(id)
	s.documents.invalidateCache("document_locations")

	return &document, nil
}

// ======================= NAMED AREAS =======================

func (s *GeoreferenceService) GetAreaNames() ([]models.AreaModel, error) {
	var areas []models.AreaModel
	if err := s.db.Order("area_name").Find(&areas).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if len(areas) == 0 {
		return nil, apperrors.NewNotFound("No areas found")
	}
	return areas, nil
}

// AddArea registers a reusable named polygon.
func (s *GeoreferenceService) AddArea(areaName, coordinates string) (*models.AreaModel, error) {
	areaName = strings.TrimSpace(areaName)
	if areaName == "" {
		return nil, apperrors.NewValidation("Area name is required")
	}
	if err := validateArea(coordinates); err != nil {
		return nil, err
	}

	var existing models.AreaModel
	err := s.db.Where("area_name = ?", areaName).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewConflict("An area with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorage(err)
	}

	area := models.AreaModel{AreaName: areaName, Coordinates: coordinates}
	if err := s.db.Create(&area).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return &area, nil
}

// ======================= LOCATIONS =======================

// GetDocumentLocations returns every document carrying a placement, for
// map rendering.
func (s *GeoreferenceService) GetDocumentLocations() ([]dtos.DocumentLocationDTO, error) {
	cacheKey := "document_locations"

	if cached, found := s.documents.getCache(cacheKey); found {
		return cached.([]dtos.DocumentLocationDTO), nil
	}

	var documents []models.DocumentModel
	err := s.db.Where("(lat IS NOT NULL AND lon IS NOT NULL) OR area IS NOT NULL").
		Find(&documents).Error
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	if len(documents) == 0 {
		return nil, apperrors.NewNotFound("No document locations found")
	}

	locations := make([]dtos.DocumentLocationDTO, 0, len(documents))
	for _, document := range documents {
		locations = append(locations, dtos.DocumentLocationDTO{
			ID:    document.Id,
			Title: document.Title,
			Lat:   document.Lat,
			Lon:   document.Lon,
			Area:  document.Area,
		})
	}

	s.documents.setCache(cacheKey, locations, 5*time.Minute)

	return locations, nil
}

func (s *GeoreferenceService) GetDocumentLocation(id int) (*dtos.DocumentLocationDTO, error) {
	var document models.DocumentModel
	err := s.db.First(&document, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Document not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	hasPoint := document.Lat != nil && document.Lon != nil
	hasArea := document.Area != nil && strings.TrimSpace(*document.Area) != ""
	if !hasPoint && !hasArea {
		return nil, apperrors.NewNotFound("Document has no location set")
	}

	return &dtos.DocumentLocationDTO{
		ID:    document.Id,
		Title: document.Title,
		Lat:   document.Lat,
		Lon:   document.Lon,
		Area:  document.Area,
	}, nil
}
