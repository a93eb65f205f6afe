package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the uniform envelope for every API response. Data is
// serialized as null when there is no payload.
type JSONResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Respond writes a JSON envelope with the given status code.
func Respond(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Message: message,
		Data:    data,
	})
}

// OK returns a 200 envelope.
func OK(ctx *gin.Context, message string, data interface{}) {
	Respond(ctx, http.StatusOK, message, data)
}

// Created returns a 201 envelope.
func Created(ctx *gin.Context, message string, data interface{}) {
	Respond(ctx, http.StatusCreated, message, data)
}

// Error returns an error envelope with a null payload.
func Error(ctx *gin.Context, status int, message string) {
	Respond(ctx, status, message, nil)
}
