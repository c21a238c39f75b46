package services

import (
	"testing"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinkFixture(t *testing.T) (*DocumentService, *LinkService, int, int) {
	t.Helper()
	db := newTestDB(t)
	documents := newDocumentService(db)
	links := NewLinkService(db, documents)

	a := createDocument(t, documents, "Development Plan")
	b := createDocument(t, documents, "Deformation Forecast")
	return documents, links, a.Id, b.Id
}

func TestLinkDocuments(t *testing.T) {
	documents, links, a, b := newLinkFixture(t)

	link, err := links.LinkDocuments(a, b, "2024-01-01", "Reference")
	require.NoError(t, err)
	assert.Equal(t, "Reference", link.Type)

	// Both documents gained a connection
	for _, id := range []int{a, b} {
		document, err := documents.GetDocumentById(id)
		require.NoError(t, err)
		assert.Equal(t, 1, document.Connections)
	}
}

func TestLinkDocumentsStoresCanonicalPair(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	// Created with the larger id first, stored smaller-first
	link, err := links.LinkDocuments(b, a, "2024-01-01", "Reference")
	require.NoError(t, err)
	assert.Less(t, link.IdDocument1, link.IdDocument2)
}

func TestLinkDocumentsDuplicate(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	_, err := links.LinkDocuments(a, b, "2024-01-01", "Reference")
	require.NoError(t, err)

	var conflict *apperrors.ConflictError

	_, err = links.LinkDocuments(a, b, "2024-06-01", "Reference")
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Message, "already exists")

	// Same pair in reverse order is still the same pair
	_, err = links.LinkDocuments(b, a, "2024-06-01", "Reference")
	require.ErrorAs(t, err, &conflict)

	// A different type on the same pair is allowed
	_, err = links.LinkDocuments(a, b, "2024-06-01", "Citation")
	require.NoError(t, err)
}

func TestLinkDocumentsValidation(t *testing.T) {
	_, links, a, _ := newLinkFixture(t)

	var validation *apperrors.ValidationError

	_, err := links.LinkDocuments(0, a, "2024-01-01", "Reference")
	require.ErrorAs(t, err, &validation)

	_, err = links.LinkDocuments(a, a, "2024-01-01", "Reference")
	require.ErrorAs(t, err, &validation)

	_, err = links.LinkDocuments(a, a+1, "2024-01-01", " ")
	require.ErrorAs(t, err, &validation)
}

func TestUpdateLinkRequiresExisting(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	_, err := links.UpdateLink(a, b, "2025-01-01", "Citation")
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Link not found", notFound.Message)
}

func TestUpdateLink(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	_, err := links.LinkDocuments(a, b, "2024-01-01", "Reference")
	require.NoError(t, err)

	updated, err := links.UpdateLink(b, a, "2025-01-01", "Citation")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", updated.Date)
	assert.Equal(t, "Citation", updated.Type)
}

func TestUpdateLinkRetypeCollision(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	_, err := links.LinkDocuments(a, b, "2024-01-01", "Reference")
	require.NoError(t, err)
	_, err = links.LinkDocuments(a, b, "2024-01-01", "Citation")
	require.NoError(t, err)

	// Retyping the Reference link into Citation would duplicate (pair, type)
	_, err = links.UpdateLink(a, b, "2025-01-01", "Citation")
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestGetDocumentLinksMergesBothDirections(t *testing.T) {
	db := newTestDB(t)
	documents := newDocumentService(db)
	links := NewLinkService(db, documents)

	a := createDocument(t, documents, "A")
	b := createDocument(t, documents, "B")
	c := createDocument(t, documents, "C")

	// b sits on both sides of the canonical ordering: (a,b) and (b,c)
	_, err := links.LinkDocuments(a.Id, b.Id, "2024-01-01", "Reference")
	require.NoError(t, err)
	_, err = links.LinkDocuments(b.Id, c.Id, "2024-02-01", "Citation")
	require.NoError(t, err)

	linked, err := links.GetDocumentLinks(b.Id)
	require.NoError(t, err)
	require.Len(t, linked, 2)

	titles := map[string]string{}
	for _, entry := range linked {
		titles[entry.Title] = entry.Type
	}
	assert.Equal(t, "Reference", titles["A"])
	assert.Equal(t, "Citation", titles["C"])
}

func TestGetDocumentLinksEmptyIsNotAnError(t *testing.T) {
	_, links, a, _ := newLinkFixture(t)

	linked, err := links.GetDocumentLinks(a)
	require.NoError(t, err)
	assert.Empty(t, linked)
}

func TestDeleteLink(t *testing.T) {
	documents, links, a, b := newLinkFixture(t)

	_, err := links.LinkDocuments(a, b, "2024-01-01", "Reference")
	require.NoError(t, err)

	deleted, err := links.DeleteLink(b, a, "Reference")
	require.NoError(t, err)
	assert.Equal(t, "Reference", deleted.Type)

	// Connections go back down on both sides
	for _, id := range []int{a, b} {
		document, err := documents.GetDocumentById(id)
		require.NoError(t, err)
		assert.Equal(t, 0, document.Connections)
	}

	// Deleting again: the link is gone
	_, err = links.DeleteLink(a, b, "Reference")
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteLinkValidation(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	var validation *apperrors.ValidationError

	_, err := links.DeleteLink(0, b, "Reference")
	require.ErrorAs(t, err, &validation)

	_, err = links.DeleteLink(a, b, "")
	require.ErrorAs(t, err, &validation)
}

func TestDeleteLinkWrongType(t *testing.T) {
	_, links, a, b := newLinkFixture(t)

	_, err := links.LinkDocuments(a, b, "2024-01-01", "Reference")
	require.NoError(t, err)

	_, err = links.DeleteLink(a, b, "Citation")
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
