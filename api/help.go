package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/handup/handup-api/store"
	"github.com/handup/handup-api/utils"
)

// helpView renders the help-offer page for a request.
func (s *Server) helpView(c *gin.Context) {
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

// offerHelp is the API for offering help on a request. It notifies the
// request's author and attributes the offer to the caller. Offering help
// on one's own request is not prevented.
func (s *Server) offerHelp(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	r, err := s.store.GetRequest(c.Param("request_id"))
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	message := c.PostForm("message")
	if message == "" {
		message = helpOfferMessage(c.GetHeader("Accept-Language"), account.Username, r.Title)
	}

	if _, err := s.store.CreateNotification(r.AccountID, account.ID, &r.ID, message); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Redirect(http.StatusFound, "/requests/")
}

// helpOfferMessage builds the default notification text for a help offer.
func helpOfferMessage(lang, sender, title string) string {
	loc := utils.NewLocalizer(lang)

	if msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.help_offer",
		TemplateData: map[string]string{
			"Sender": sender,
			"Title":  title,
		},
	}); err == nil {
		return msg
	}

	return fmt.Sprintf("%s offered help on your request '%s'!", sender, title)
}
