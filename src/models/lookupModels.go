package models

// Lookup tables backing the document form dropdowns. Scales and types are
// user-extensible; stakeholders are also kept as a joined string on the
// document itself (see DocumentModel.Stakeholders).

type StakeholderModel struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
}

type ScaleModel struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}

type TypeModel struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}
