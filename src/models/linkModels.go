package models

// DocumentLinkModel is a typed relation between two documents. Rows are
// always stored with IdDocument1 < IdDocument2 so that the unordered pair
// has a single canonical representation; (pair, type) is unique.
type DocumentLinkModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	IdDocument1 int    `json:"idDocument1" gorm:"column:id_document1;not null;uniqueIndex:idx_links_pair_type"`
	IdDocument2 int    `json:"idDocument2" gorm:"column:id_document2;not null;uniqueIndex:idx_links_pair_type"`
	Date        string `json:"date" gorm:"type:varchar(100)"`
	Type        string `json:"type" gorm:"type:varchar(100);not null;uniqueIndex:idx_links_pair_type"`
}
