package models

// AreaModel is a named, reusable polygon geometry that can be assigned as a
// document's position. Coordinates holds serialized GeoJSON.
type AreaModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	AreaName    string `json:"areaName" gorm:"column:area_name;type:varchar(255);uniqueIndex;not null"`
	Coordinates string `json:"coordinates" gorm:"type:text;not null"`
}
