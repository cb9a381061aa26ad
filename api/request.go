package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handup/handup-api/consts"
	"github.com/handup/handup-api/store"
)

// requestsList is the API for the requests page, optionally filtered by an
// exact category match. The "All" sentinel behaves like no filter.
func (s *Server) requestsList(c *gin.Context) {
	selected := c.Query("category")

	requests, err := s.store.ListRequests(selected, 0)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":          requests,
		"categories":        consts.Categories,
		"selected_category": selected,
	})
}

// addRequestForm renders the add-request page context.
func (s *Server) addRequestForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": consts.Categories[1:],
	})
}

// addRequest is the API for posting a new help request. The request is
// owned by the caller; nothing is persisted when validation fails.
func (s *Server) addRequest(c *gin.Context) {
	logger := log.WithField("api", "addRequest")

	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Title       string `form:"title" json:"title" binding:"required"`
		Description string `form:"description" json:"description" binding:"required"`
		Category    string `form:"category" json:"category"`
	}

	if err := c.ShouldBind(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if _, err := s.store.CreateRequest(account.ID, params.Title, params.Description, params.Category); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Redirect(http.StatusFound, "/requests/")
}

// requestDetail is the read-only request page, open to anonymous visitors.
func (s *Server) requestDetail(c *gin.Context) {
	r, err := s.store.GetRequest(c.Param("request_id"))
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"help_request": r,
	})
}

// acceptRequest marks a request accepted and returns to the notifications
// page. Ownership is not checked; see CompleteRequest for the same rule.
func (s *Server) acceptRequest(c *gin.Context) {
	s.setRequestFlag(c, s.store.AcceptRequest)
}

// completeRequest marks a request completed and returns to the
// notifications page.
func (s *Server) completeRequest(c *gin.Context) {
	s.setRequestFlag(c, s.store.CompleteRequest)
}

func (s *Server) setRequestFlag(c *gin.Context, update func(string) error) {
	if err := update(c.Param("request_id")); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/notifications/")
}
