package controllers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const resourceUploadDir = "uploads/resources"

type ResourceController struct {
	service   *services.ResourceService
	documents *services.DocumentService
}

func NewResourceController(service *services.ResourceService, documents *services.DocumentService) *ResourceController {
	return &ResourceController{service: service, documents: documents}
}

func (rc *ResourceController) UploadResource(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	// Verify that the document exists
	if _, err := rc.documents.GetDocumentById(id); err != nil {
		respondError(c, err, 404)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if err := os.MkdirAll(resourceUploadDir, 0755); err != nil {
		c.JSON(500, gin.H{"error": "Could not create upload directory"})
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(header.Filename))
	filePath := filepath.Join(resourceUploadDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}

	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	resource := models.OriginalResourceModel{
		DocumentId:   id,
		ResourceType: c.PostForm("resourceType"),
		Description:  description,
		Filename:     filename,
		OriginalName: header.Filename,
		FilePath:     filePath,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := rc.service.SaveResource(&resource); err != nil {
		// Clean up file if DB save fails
		os.Remove(filePath)
		respondError(c, err, 404)
		return
	}

	c.JSON(201, resource)
}

// ImportResourceFromDrive fetches a file behind a Google Drive link and
// stores it as an original resource of the document.
func (rc *ResourceController) ImportResourceFromDrive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if _, err := rc.documents.GetDocumentById(id); err != nil {
		respondError(c, err, 404)
		return
	}

	var req struct {
		URL          string  `json:"url"`
		ResourceType string  `json:"resourceType"`
		Description  *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsGoogleDriveURL(req.URL) {
		c.JSON(400, gin.H{"error": "URL is not a Google Drive link"})
		return
	}

	fileID, err := utils.ExtractFileIDFromURL(req.URL)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	body, originalName, err := utils.DownloadFileFromGoogleDrive(fileID)
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	if err := os.MkdirAll(resourceUploadDir, 0755); err != nil {
		c.JSON(500, gin.H{"error": "Could not create upload directory"})
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(originalName))
	filePath := filepath.Join(resourceUploadDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, body)
	if err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}

	resource := models.OriginalResourceModel{
		DocumentId:   id,
		ResourceType: req.ResourceType,
		Description:  req.Description,
		Filename:     filename,
		OriginalName: originalName,
		FilePath:     filePath,
		Size:         size,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := rc.service.SaveResource(&resource); err != nil {
		os.Remove(filePath)
		respondError(c, err, 404)
		return
	}

	c.JSON(201, resource)
}

func (rc *ResourceController) GetDocumentResources(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	resources, err := rc.service.GetResourcesByDocumentId(id)
	if err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, resources)
}

func (rc *ResourceController) ServeResource(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	resource, err := rc.service.GetResourceById(id)
	if err != nil {
		respondError(c, err, 404)
		return
	}

	fileInfo, err := os.Stat(resource.FilePath)
	if os.IsNotExist(err) {
		c.JSON(404, gin.H{"error": "Resource file not found"})
		return
	}

	// Cache headers
	lastModified := fileInfo.ModTime().UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
	etag := fmt.Sprintf(`"%d-%d"`, resource.Id, resource.UpdatedAt.Unix())

	// Cache for 30 days; uploaded originals rarely change
	c.Header("Cache-Control", "public, max-age=2592000")
	c.Header("ETag", etag)
	c.Header("Last-Modified", lastModified)

	if match := c.GetHeader("If-None-Match"); match == etag {
		c.Status(304)
		return
	}

	if modSince := c.GetHeader("If-Modified-Since"); modSince != "" {
		if t, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", modSince); err == nil {
			if !fileInfo.ModTime().After(t) {
				c.Status(304)
				return
			}
		}
	}

	if resource.ContentType != "" {
		c.Header("Content-Type", resource.ContentType)
	}
	c.File(resource.FilePath)
}

func (rc *ResourceController) DeleteResource(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := rc.service.DeleteResource(id); err != nil {
		respondError(c, err, 404)
		return
	}
	c.JSON(200, gin.H{"id": id, "message": "Resource deleted successfully."})
}
