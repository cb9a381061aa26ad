package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handup/handup-api/store"
)

// signupForm renders the signup page context.
func (s *Server) signupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "email", "phone", "location", "password", "confirm_password"},
	})
}

// signup is the API for registering a new account together with its
// profile. A successful signup logs the new account in right away.
func (s *Server) signup(c *gin.Context) {
	logger := log.WithField("api", "signup")

	var params struct {
		Username        string `form:"username" json:"username" binding:"required"`
		Email           string `form:"email" json:"email" binding:"required,email"`
		Phone           string `form:"phone" json:"phone" binding:"required"`
		Location        string `form:"location" json:"location" binding:"required"`
		Password        string `form:"password" json:"password" binding:"required"`
		ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
	}

	if err := c.ShouldBind(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Password != params.ConfirmPassword {
		abortWithEncoding(c, http.StatusBadRequest, errorPasswordMismatch)
		return
	}

	account, err := s.store.CreateAccount(store.AccountParams{
		Username: params.Username,
		Email:    params.Email,
		Password: params.Password,
		Phone:    params.Phone,
		Location: params.Location,
	})
	if err != nil {
		if err == store.ErrUsernameTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.issueSession(c, account.Username); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
