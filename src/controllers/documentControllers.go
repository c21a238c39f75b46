package controllers

import (
	"strconv"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	service *services.DocumentService
}

func NewDocumentController(service *services.DocumentService) *DocumentController {
	return &DocumentController{service: service}
}

// documentPayload flattens a document plus a confirmation message into the
// response shape the frontend expects.
func documentPayload(document *models.DocumentModel, message string) gin.H {
	return gin.H{
		"id":           document.Id,
		"title":        document.Title,
		"stakeholders": document.Stakeholders,
		"scale":        document.Scale,
		"issuanceDate": document.IssuanceDate,
		"type":         document.Type,
		"connections":  document.Connections,
		"language":     document.Language,
		"pages":        document.Pages,
		"lat":          document.Lat,
		"lon":          document.Lon,
		"area":         document.Area,
		"description":  document.Description,
		"message":      message,
	}
}

func (dc *DocumentController) GetAllDocuments(c *gin.Context) {
	documents, err := dc.service.GetAllDocuments()
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, documents)
}

func (dc *DocumentController) GetDocumentById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	document, err := dc.service.GetDocumentById(id)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, document)
}

func (dc *DocumentController) AddDocument(c *gin.Context) {
	var document models.DocumentModel
	if err := c.ShouldBindJSON(&document); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	created, err := dc.service.AddDocument(&document)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(201, documentPayload(created, "Document added successfully."))
}

func (dc *DocumentController) UpdateDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var document models.DocumentModel
	if err := c.ShouldBindJSON(&document); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updated, err := dc.service.UpdateDocument(id, &document)
	if err != nil {
		// A missing document on update is the caller's mistake: 400
		respondError(c, err, 400)
		return
	}
	c.JSON(200, documentPayload(updated, "Document updated successfully."))
}

func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := dc.service.DeleteDocumentById(id); err != nil {
		respondError(c, err, 400)
		return
	}
	c.JSON(200, gin.H{"id": id, "message": "Document deleted successfully."})
}

func (dc *DocumentController) AddDocumentDescription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	document, err := dc.service.AddDocumentDescription(id, req.Description)
	if err != nil {
		respondError(c, err, 400)
		return
	}
	c.JSON(200, documentPayload(document, "Description added successfully."))
}

type positionRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

func (dc *DocumentController) AdjustDocumentPosition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "x and y must be integers"})
		return
	}
	if req.X == nil || req.Y == nil {
		c.JSON(400, gin.H{"error": "x and y must be integers"})
		return
	}

	position, err := dc.service.AdjustDocumentPosition(id, *req.X, *req.Y)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"documentId": position.DocumentId, "x": position.X, "y": position.Y})
}

func (dc *DocumentController) GetDocumentPosition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	position, err := dc.service.GetDocumentPosition(id)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"x": position.X, "y": position.Y})
}

// ======================= LOOKUPS =======================

func (dc *DocumentController) ShowStakeholders(c *gin.Context) {
	stakeholders, err := dc.service.ShowStakeholders()
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"stakeholders": stakeholders})
}

func (dc *DocumentController) ShowScales(c *gin.Context) {
	scales, err := dc.service.ShowScales()
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, scales)
}

func (dc *DocumentController) ShowTypes(c *gin.Context) {
	types, err := dc.service.ShowTypes()
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, types)
}

func (dc *DocumentController) CheckAndAddStakeholder(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	status, err := dc.service.CheckAndAddStakeholders(req.Name)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"message": status})
}

// ======================= EXCEL IMPORT =======================

func (dc *DocumentController) ImportDocuments(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := dc.service.ImportDocumentsFromExcel(file)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"imported": result.Imported, "errors": result.Errors})
}
