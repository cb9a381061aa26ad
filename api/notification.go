package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// notificationsList is the API for the caller's notifications, newest
// first. Only notifications addressed to the caller are returned.
func (s *Server) notificationsList(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	notifications, err := s.store.ListNotifications(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
	})
}
