package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// WriteSerializer runs mutating requests one at a time. Reads pass through.
type WriteSerializer struct {
	mu sync.Mutex
}

// NewWriteSerializer creates a new write serializer.
func NewWriteSerializer() *WriteSerializer {
	return &WriteSerializer{}
}

// Middleware returns a Gin middleware handler that holds the write lock for the whole request.
func (s *WriteSerializer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isMutating(c.Request.Method) {
			c.Next()
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		c.Next()
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
