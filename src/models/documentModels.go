package models

type DocumentModel struct {
	Id           int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string   `json:"title" gorm:"type:varchar(255);not null"`
	Stakeholders string   `json:"stakeholders" gorm:"type:text"`
	Scale        string   `json:"scale" gorm:"type:varchar(100)"`
	IssuanceDate string   `json:"issuanceDate" gorm:"column:issuance_date;type:varchar(100)"`
	Type         string   `json:"type" gorm:"type:varchar(100)"`
	Connections  int      `json:"connections" gorm:"default:0;not null"`
	Language     string   `json:"language" gorm:"type:varchar(100)"`
	Pages        string   `json:"pages" gorm:"type:varchar(100)"`
	Lat          *float64 `json:"lat" gorm:"column:lat"`
	Lon          *float64 `json:"lon" gorm:"column:lon"`
	Area         *string  `json:"area" gorm:"type:text"`
	Description  *string  `json:"description" gorm:"type:text"`
}

// DocumentPositionModel stores the on-screen diagram coordinates of a
// document. These are pixel offsets for the relation graph, not geography.
type DocumentPositionModel struct {
	Id         int `json:"id" gorm:"primaryKey;autoIncrement"`
	DocumentId int `json:"documentId" gorm:"column:document_id;uniqueIndex;not null"`
	X          int `json:"x" gorm:"not null"`
	Y          int `json:"y" gorm:"not null"`
}
