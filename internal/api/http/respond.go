package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/home-central/backend/internal/supabase"
	"github.com/home-central/backend/internal/validation"
)

// Error translates a gateway or store failure into its HTTP status with the
// provider's message as detail. Nothing is retried or masked.
func Error(c *gin.Context, err error) {
	c.JSON(supabase.StatusOf(err), gin.H{"error": err.Error()})
}

// ValidationFailed reports every violated field in one 422 response.
func ValidationFailed(c *gin.Context, fields []validation.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}

// MalformedBody reports an unparseable request body.
func MalformedBody(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
}
