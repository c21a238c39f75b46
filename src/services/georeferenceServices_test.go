package services

import (
	"testing"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeoFixture(t *testing.T) (*DocumentService, *GeoreferenceService, int) {
	t.Helper()
	db := newTestDB(t)
	documents := newDocumentService(db)
	geo := NewGeoreferenceService(db, documents)

	document := createDocument(t, documents, "Gruvstadspark Plan")
	return documents, geo, document.Id
}

func float(v float64) *float64 { return &v }
func str(v string) *string     { return &v }

func TestUpdateGeoreferenceRequiresData(t *testing.T) {
	_, geo, id := newGeoFixture(t)

	_, err := geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Georeferencing data is required", validation.Message)
}

func TestUpdateGeoreferenceHalfPoint(t *testing.T) {
	_, geo, id := newGeoFixture(t)

	var validation *apperrors.ValidationError

	_, err := geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{Lat: float(67.85)})
	require.ErrorAs(t, err, &validation)

	_, err = geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{Lon: float(20.22)})
	require.ErrorAs(t, err, &validation)
}

func TestUpdateGeoreferenceBounds(t *testing.T) {
	_, geo, id := newGeoFixture(t)

	var validation *apperrors.ValidationError

	// Exactly on the boundary is rejected
	_, err := geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{
		Lat: float(KirunaLatMin), Lon: float(20.22),
	})
	require.ErrorAs(t, err, &validation)

	_, err = geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{
		Lat: float(67.85), Lon: float(KirunaLonMax),
	})
	require.ErrorAs(t, err, &validation)

	// Clearly outside
	_, err = geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{
		Lat: float(59.33), Lon: float(18.06),
	})
	require.ErrorAs(t, err, &validation)

	// Just inside passes
	_, err = geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{
		Lat: float(KirunaLatMin + 0.0001), Lon: float(KirunaLonMin + 0.0001),
	})
	require.NoError(t, err)
}

func TestUpdateGeoreferencePointClearsArea(t *testing.T) {
	documents, geo, id := newGeoFixture(t)

	area := `{"type":"Polygon","coordinates":[[[20.1,67.8],[20.3,67.8],[20.3,67.9],[20.1,67.8]]]}`
	_, err := geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{Area: str(area)})
	require.NoError(t, err)

	document, err := documents.GetDocumentById(id)
	require.NoError(t, err)
	require.NotNil(t, document.Area)
	assert.Nil(t, document.Lat)

	_, err = geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{
		Lat: float(67.85), Lon: float(20.22),
	})
	require.NoError(t, err)

	document, err = documents.GetDocumentById(id)
	require.NoError(t, err)
	assert.Nil(t, document.Area)
	require.NotNil(t, document.Lat)
	assert.Equal(t, 67.85, *document.Lat)
}

func TestUpdateGeoreferenceEmptyArea(t *testing.T) {
	_, geo, id := newGeoFixture(t)

	var validation *apperrors.ValidationError

	_, err := geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{Area: str("{}")})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Area cannot be an empty GeoJSON object", validation.Message)

	_, err = geo.UpdateDocumentGeoreference(id, dtos.GeoreferenceDTO{Area: str("not json")})
	require.ErrorAs(t, err, &validation)
}

func TestUpdateGeoreferenceUnknownDocument(t *testing.T) {
	db := newTestDB(t)
	geo := NewGeoreferenceService(db, newDocumentService(db))

	_, err := geo.UpdateDocumentGeoreference(999, dtos.GeoreferenceDTO{
		Lat: float(67.85), Lon: float(20.22),
	})
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAreaRegistry(t *testing.T) {
	db := newTestDB(t)
	geo := NewGeoreferenceService(db, newDocumentService(db))

	// Empty registry reads as not found at this boundary
	_, err := geo.GetAreaNames()
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No areas found", notFound.Message)

	coordinates := `{"type":"Polygon","coordinates":[[[20.1,67.8],[20.3,67.8],[20.3,67.9],[20.1,67.8]]]}`
	_, err = geo.AddArea("Gruvstadsparken", coordinates)
	require.NoError(t, err)

	areas, err := geo.GetAreaNames()
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Gruvstadsparken", areas[0].AreaName)

	_, err = geo.AddArea("Gruvstadsparken", coordinates)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestGetDocumentLocations(t *testing.T) {
	db := newTestDB(t)
	documents := newDocumentService(db)
	geo := NewGeoreferenceService(db, documents)

	placed := createDocument(t, documents, "Placed")
	createDocument(t, documents, "Unplaced")

	// Nothing georeferenced yet
	_, err := geo.GetDocumentLocations()
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = geo.UpdateDocumentGeoreference(placed.Id, dtos.GeoreferenceDTO{
		Lat: float(67.85), Lon: float(20.22),
	})
	require.NoError(t, err)

	locations, err := geo.GetDocumentLocations()
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, placed.Id, locations[0].ID)
	assert.Equal(t, "Placed", locations[0].Title)
}

func TestGetDocumentLocation(t *testing.T) {
	db := newTestDB(t)
	documents := newDocumentService(db)
	geo := NewGeoreferenceService(db, documents)

	document := createDocument(t, documents, "Somewhere")

	_, err := geo.GetDocumentLocation(document.Id)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = geo.UpdateDocumentGeoreference(document.Id, dtos.GeoreferenceDTO{
		Lat: float(67.85), Lon: float(20.22),
	})
	require.NoError(t, err)

	location, err := geo.GetDocumentLocation(document.Id)
	require.NoError(t, err)
	require.NotNil(t, location.Lat)
	assert.Equal(t, 67.85, *location.Lat)
}
