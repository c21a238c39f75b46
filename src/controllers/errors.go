package controllers

import (
	"errors"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into its HTTP shape. NotFound
// does not map to one code everywhere: most document routes report it as a
// client error (400), while link deletion and the map lookups use 404, so
// the caller picks.
func respondError(c *gin.Context, err error, notFoundStatus int) {
	var validation *apperrors.ValidationError
	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError

	switch {
	case errors.As(err, &validation):
		c.JSON(400, gin.H{"error": validation.Message})
	case errors.As(err, &notFound):
		c.JSON(notFoundStatus, gin.H{"error": notFound.Message})
	case errors.As(err, &conflict):
		c.JSON(409, gin.H{"error": conflict.Message})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}
