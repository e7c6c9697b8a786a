package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const REQUEST_ID_KEY = "request_id"

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func Status[T any](value T, status int) Result {
	return Result{
		result: value,
		status: status,
	}
}

// Tags every request with a random id and logs its outcome.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(REQUEST_ID_KEY, id)
		c.Header("X-Request-ID", id)
		c.Next()
		slog.Info(c.Request.Method+" "+c.FullPath(), "request_id", id, "status", c.Writer.Status())
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(REQUEST_ID_KEY)
}

func WriteResponse(c *gin.Context, path string, res Result) {
	if res.status >= http.StatusBadRequest {
		slog.Error("request failed", "path", path, "request_id", GetRequestID(c), "error", res.result)
		if _, ok := res.result.(string); ok {
			c.JSON(res.status, NewErrorResponse(path, GetRequestID(c), res.result))
			return
		}
	}
	c.JSON(res.status, res.result)
}

// Binds the JSON body to F and writes the handler result.
func MapPost[F any](app gin.IRouter, path string, handler func(*gin.Context, F) Result) {
	app.POST(path, func(c *gin.Context) {
		var body F
		if err := c.ShouldBindJSON(&body); err != nil {
			WriteResponse(c, path, BadRequest("invalid request body: "+err.Error()))
			return
		}
		WriteResponse(c, path, handler(c, body))
	})
}

// Binds the query string to F using form tags.
func MapGet[F any](app gin.IRouter, path string, handler func(*gin.Context, F) Result) {
	app.GET(path, func(c *gin.Context) {
		var query F
		if err := c.ShouldBindQuery(&query); err != nil {
			WriteResponse(c, path, BadRequest("invalid query: "+err.Error()))
			return
		}
		WriteResponse(c, path, handler(c, query))
	})
}
