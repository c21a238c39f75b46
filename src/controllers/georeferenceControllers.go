package controllers

import (
	"strconv"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/dtos"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type GeoreferenceController struct {
	service *services.GeoreferenceService
}

func NewGeoreferenceController(service *services.GeoreferenceService) *GeoreferenceController {
	return &GeoreferenceController{service: service}
}

func (gc *GeoreferenceController) UpdateDocumentGeoreference(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var geo dtos.GeoreferenceDTO
	if err := c.ShouldBindJSON(&geo); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	document, err := gc.service.UpdateDocumentGeoreference(id, geo)
	if err != nil {
		respondError(c, err, 400)
		return
	}
	c.JSON(200, gin.H{
		"id":      document.Id,
		"lat":     document.Lat,
		"lon":     document.Lon,
		"area":    document.Area,
		"message": "Georeference updated successfully.",
	})
}

func (gc *GeoreferenceController) GetAreaNames(c *gin.Context) {
	areas, err := gc.service.GetAreaNames()
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"areas": areas})
}

func (gc *GeoreferenceController) AddArea(c *gin.Context) {
	var req struct {
		AreaName    string `json:"areaName"`
		Coordinates string `json:"coordinates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	area, err := gc.service.AddArea(req.AreaName, req.Coordinates)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(201, area)
}

func (gc *GeoreferenceController) GetDocumentLocations(c *gin.Context) {
	locations, err := gc.service.GetDocumentLocations()
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, locations)
}

func (gc *GeoreferenceController) GetDocumentLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	location, err := gc.service.GetDocumentLocation(id)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, location)
}
