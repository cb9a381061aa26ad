package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handup/handup-api/consts"
)

// index renders the home page context: the placeholder quick stats and the
// six most recent help requests.
func (s *Server) index(c *gin.Context) {
	recent, err := s.store.ListRequests("", 6)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quick_stats":     consts.QuickStats,
		"recent_requests": recent,
	})
}

// settings renders the static settings page context.
func (s *Server) settings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
