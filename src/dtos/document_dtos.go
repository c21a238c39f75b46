package dtos

// LinkedDocumentDTO describes the other end of a link from the point of
// view of one document.
type LinkedDocumentDTO struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

// DocumentLocationDTO is the slim shape used for map rendering: only the
// identity and whichever placement the document carries.
type DocumentLocationDTO struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Area  *string  `json:"area,omitempty"`
}

// GeoreferenceDTO is the payload for updating a document's placement.
// Either a lat/lon pair or a serialized GeoJSON area must be present.
type GeoreferenceDTO struct {
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
	Area *string  `json:"area"`
}
