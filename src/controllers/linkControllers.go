package controllers

import (
	"fmt"
	"strconv"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type LinkController struct {
	service *services.LinkService
}

func NewLinkController(service *services.LinkService) *LinkController {
	return &LinkController{service: service}
}

type linkRequest struct {
	IdDocument1 int    `json:"idDocument1"`
	IdDocument2 int    `json:"idDocument2"`
	Date        string `json:"date"`
	Type        string `json:"type"`
}

func (lc *LinkController) LinkDocuments(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	link, err := lc.service.LinkDocuments(req.IdDocument1, req.IdDocument2, req.Date, req.Type)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(201, gin.H{
		"idDocument1": link.IdDocument1,
		"idDocument2": link.IdDocument2,
		"date":        link.Date,
		"type":        link.Type,
	})
}

func (lc *LinkController) UpdateLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	link, err := lc.service.UpdateLink(req.IdDocument1, req.IdDocument2, req.Date, req.Type)
	if err != nil {
		// Updating a link that was never created is the caller's mistake
		respondError(c, err, 400)
		return
	}
	c.JSON(200, gin.H{
		"id1":  link.IdDocument1,
		"id2":  link.IdDocument2,
		"date": link.Date,
		"type": link.Type,
	})
}

func (lc *LinkController) DeleteLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	link, err := lc.service.DeleteLink(req.IdDocument1, req.IdDocument2, req.Type)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{
		"idDocument1": link.IdDocument1,
		"idDocument2": link.IdDocument2,
		"date":        link.Date,
		"type":        link.Type,
		"message":     "Link deleted successfully.",
	})
}

func (lc *LinkController) GetDocumentLinks(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	links, err := lc.service.GetDocumentLinks(id)
	if err != nil {
		respondError(c, err, 404)
		return
	}

	// Zero links is a documented non-error: report it as a message, not
	// as a bare empty array.
	if len(links) == 0 {
		c.JSON(200, gin.H{"message": fmt.Sprintf("Document %d has no links", id)})
		return
	}
	c.JSON(200, gin.H{"links": links})
}
