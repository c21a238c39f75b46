package models

import "time"

// OriginalResourceModel is the metadata row for an uploaded original
// resource file. The bytes live on disk under the uploads directory; the
// row keys them by document.
type OriginalResourceModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	DocumentId   int       `json:"documentId" gorm:"column:document_id;index;not null"`
	ResourceType string    `json:"resourceType" gorm:"column:resource_type;type:varchar(100)"`
	Description  *string   `json:"description,omitempty" gorm:"type:text"`
	Filename     string    `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string    `json:"originalName" gorm:"column:original_name;type:varchar(255)"`
	FilePath     string    `json:"filePath" gorm:"column:file_path;type:varchar(512);not null"`
	ContentType  string    `json:"contentType" gorm:"column:content_type;type:varchar(100)"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
