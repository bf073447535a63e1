package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ok writes data as the raw JSON body; the bundled frontend reads records without an envelope
func Ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with data as the raw JSON body
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error aborts the request with {"error": message, ...meta}
func Error(c *gin.Context, status int, message string, meta map[string]any) {
	body := gin.H{"error": message}
	for k, v := range meta {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}
