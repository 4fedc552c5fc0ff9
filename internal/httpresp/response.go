package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Envelope is the body of every successful response.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func Send(c *gin.Context, status int, message string, data any, pagination *Pagination) {
	c.JSON(status, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

func OK(c *gin.Context, message string, data any) {
	Send(c, http.StatusOK, message, data, nil)
}

func Created(c *gin.Context, message string, data any) {
	Send(c, http.StatusCreated, message, data, nil)
}

func Page[T any](c *gin.Context, message string, data []T, p *Pagination) {
	if data == nil {
		data = []T{}
	}
	Send(c, http.StatusOK, message, data, p)
}

// List always renders an array, never null.
func List[T any](c *gin.Context, message string, data []T) {
	if data == nil {
		data = []T{}
	}
	Send(c, http.StatusOK, message, data, nil)
}
