// Package response centralizes the wire shapes the API speaks. Successful
// reads return bare records or arrays; mutations return a message and the
// record's index; failures return an object with a single "error" key.
package response

import (
	"github.com/gin-gonic/gin"
)

// JSON sends the payload as-is.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Message sends {"message": ...}.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Created sends 201 with the new record's index as "id".
func Created(c *gin.Context, message string, id int) {
	c.JSON(201, gin.H{"message": message, "id": id})
}

// Error sends {"error": ...}.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
