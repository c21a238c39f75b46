package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/dtos"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"gorm.io/gorm"
)

type LinkService struct {
	db        *gorm.DB
	documents *DocumentService
}

// NewLinkService creates a new instance of LinkService. The document
// service is needed to keep its caches honest: links bump the connections
// counter on document rows.
func NewLinkService(db *gorm.DB, documents *DocumentService) *LinkService {
	return &LinkService{db: db, documents: documents}
}

// canonicalPair orders an unordered document pair so every link row is
// stored with the smaller id first.
func canonicalPair(id1, id2 int) (int, int) {
	if id2 < id1 {
		return id2, id1
	}
	return id1, id2
}

// LinkDocuments creates a typed link between two documents. The same pair
// may carry several links of different types, never two of the same type.
// The insert and both connections increments commit as one transaction.
func (s *LinkService) LinkDocuments(id1, id2 int, date, linkType string) (*models.DocumentLinkModel, error) {
	if id1 <= 0 || id2 <= 0 {
		return nil, apperrors.NewValidation("Both document ids are required")
	}
	if id1 == id2 {
		return nil, apperrors.NewValidation("A document cannot be linked to itself")
	}
	if strings.TrimSpace(linkType) == "" {
		return nil, apperrors.NewValidation("Link type is required")
	}

	first, second := canonicalPair(id1, id2)

	var existing models.DocumentLinkModel
	err := s.db.Where("id_document1 = ? AND id_document2 = ? AND type = ?", first, second, linkType).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.NewConflict("Link of this type already exists between these documents")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorage(err)
	}

	link := models.DocumentLinkModel{
		IdDocument1: first,
		IdDocument2: second,
		Date:        date,
		Type:        linkType,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.DocumentModel{}).Where("id = ?", first).
			Update("connections", gorm.Expr("connections + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.DocumentModel{}).Where("id = ?", second).
			Update("connections", gorm.Expr("connections + 1")).Error
	})
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.documents.invalidateDocumentCaches(first)
	s.documents.invalidateDocumentCaches(second)

	return &link, nil
}

// UpdateLink mutates the date and type of an existing link for a pair.
func (s *LinkService) UpdateLink(id1, id2 int, newDate, newType string) (*models.DocumentLinkModel, error) {
	if id1 <= 0 || id2 <= 0 {
		return nil, apperrors.NewValidation("Both document ids are required")
	}

	first, second := canonicalPair(id1, id2)

	var link models.DocumentLinkModel
	err := s.db.Where("id_document1 = ? AND id_document2 = ?", first, second).
		Order("id").First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Link not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	// A retype must not collide with another link on the same pair
	if newType != link.Type {
		var clash models.DocumentLinkModel
		err := s.db.Where("id_document1 = ? AND id_document2 = ? AND type = ?", first, second, newType).
			First(&clash).Error
		if err == nil {
			return nil, apperrors.NewConflict("Link of this type already exists between these documents")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewStorage(err)
		}
	}

	if err := s.db.Model(&link).Updates(map[string]interface{}{
		"date": newDate,
		"type": newType,
	}).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}

	link.Date = newDate
	link.Type = newType
	return &link, nil
}

// GetDocumentLinks returns the other end of every link touching the given
// document. An empty result is not an error; the controller reports it as
// a structured message.
func (s *LinkService) GetDocumentLinks(documentId int) ([]dtos.LinkedDocumentDTO, error) {
	var outgoing []dtos.LinkedDocumentDTO
	err := s.db.Table("document_link_models AS l").
		Select("d.id AS id, d.title AS title, l.date AS date, l.type AS type").
		Joins("JOIN document_models d ON d.id = l.id_document2").
		Where("l.id_document1 = ?", documentId).
		Scan(&outgoing).Error
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	var incoming []dtos.LinkedDocumentDTO
	err = s.db.Table("document_link_models AS l").
		Select("d.id AS id, d.title AS title, l.date AS date, l.type AS type").
		Joins("JOIN document_models d ON d.id = l.id_document1").
		Where("l.id_document2 = ?", documentId).
		Scan(&incoming).Error
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	return append(outgoing, incoming...), nil
}

// DeleteLink removes the link identified by the pair and type, and gives
// back the connection it had cost each document.
func (s *LinkService) DeleteLink(id1, id2 int, linkType string) (*models.DocumentLinkModel, error) {
	if id1 <= 0 || id2 <= 0 || strings.TrimSpace(linkType) == "" {
		return nil, apperrors.NewValidation("Both document ids and the link type are required")
	}

	first, second := canonicalPair(id1, id2)

	var link models.DocumentLinkModel
	err := s.db.Where("id_document1 = ? AND id_document2 = ? AND type = ?", first, second, linkType).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Link not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.DocumentLinkModel{}, link.Id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("link %d vanished during delete", link.Id)
		}
		if err := tx.Model(&models.DocumentModel{}).Where("id = ?", first).
			Update("connections", gorm.Expr("connections - 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.DocumentModel{}).Where("id = ?", second).
			Update("connections", gorm.Expr("connections - 1")).Error
	})
	if err != nil {
		return nil, apperrors.NewStorage(err)
	}

	s.documents.invalidateDocumentCaches(first)
	s.documents.invalidateDocumentCaches(second)

	return &link, nil
}
