package services

import (
	"errors"
	"os"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"gorm.io/gorm"
)

// ResourceService keeps the metadata rows for uploaded original resources.
// The file bytes themselves live on disk; controllers stream them in and
// out, this service owns the bookkeeping.
type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

func (s *ResourceService) GetResourcesByDocumentId(documentId int) ([]models.OriginalResourceModel, error) {
	var resources []models.OriginalResourceModel
	if err := s.db.Where("document_id = ?", documentId).Find(&resources).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return resources, nil
}

func (s *ResourceService) GetResourceById(id int) (*models.OriginalResourceModel, error) {
	var resource models.OriginalResourceModel
	err := s.db.First(&resource, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Resource not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}
	return &resource, nil
}

func (s *ResourceService) SaveResource(resource *models.OriginalResourceModel) error {
	if err := s.db.Create(resource).Error; err != nil {
		return apperrors.NewStorage(err)
	}
	return nil
}

func (s *ResourceService) DeleteResource(id int) error {
	resource, err := s.GetResourceById(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.OriginalResourceModel{}, id).Error; err != nil {
		return apperrors.NewStorage(err)
	}
	if resource.FilePath != "" {
		_ = os.Remove(resource.FilePath)
	}
	return nil
}

// DeleteResourcesByDocumentId removes every resource of a document, rows
// and files. Document deletion cascades through here.
func (s *ResourceService) DeleteResourcesByDocumentId(documentId int) error {
	resources, err := s.GetResourcesByDocumentId(documentId)
	if err != nil {
		return err
	}

	if err := s.db.Where("document_id = ?", documentId).
		Delete(&models.OriginalResourceModel{}).Error; err != nil {
		return apperrors.NewStorage(err)
	}

	for _, resource := range resources {
		if resource.FilePath != "" {
			_ = os.Remove(resource.FilePath)
		}
	}
	return nil
}
