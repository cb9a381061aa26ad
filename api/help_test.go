package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/handup/handup-api/api/mocks"
	"github.com/handup/handup-api/schema"
	"github.com/handup/handup-api/store"
)

func offerHelpRouter(s *Server, sender *schema.Account) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("account", sender)
	})
	router.POST("/help/:request_id/", s.offerHelp)
	return router
}

func TestOfferHelpDefaultMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockHandUpCore(ctl)

	s := Server{store: a}

	authorID := uuid.New()
	senderID := uuid.New()
	requestID := uuid.New()

	request := &schema.HelpRequest{
		ID:        requestID,
		AccountID: authorID,
		Title:     "Fix my sink",
	}

	a.EXPECT().GetRequest(requestID.String()).Return(request, nil).Times(1)
	a.EXPECT().CreateNotification(authorID, senderID, &requestID,
		"alice offered help on your request 'Fix my sink'!").
		Return(&schema.Notification{}, nil).Times(1)

	router := offerHelpRouter(&s, &schema.Account{ID: senderID, Username: "alice"})

	w := postForm(router, "/help/"+requestID.String()+"/", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code, "wrong status code")
	assert.Equal(t, "/requests/", w.Header().Get("Location"), "wrong redirect")
}

func TestOfferHelpCustomMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockHandUpCore(ctl)

	s := Server{store: a}

	authorID := uuid.New()
	senderID := uuid.New()
	requestID := uuid.New()

	request := &schema.HelpRequest{
		ID:        requestID,
		AccountID: authorID,
		Title:     "Fix my sink",
	}

	a.EXPECT().GetRequest(requestID.String()).Return(request, nil).Times(1)
	a.EXPECT().CreateNotification(authorID, senderID, &requestID, "I have a wrench, be there at 5.").
		Return(&schema.Notification{}, nil).Times(1)

	router := offerHelpRouter(&s, &schema.Account{ID: senderID, Username: "alice"})

	w := postForm(router, "/help/"+requestID.String()+"/", url.Values{
		"message": {"I have a wrench, be there at 5."},
	})

	assert.Equal(t, http.StatusFound, w.Code, "wrong status code")
}

func TestOfferHelpUnknownRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockHandUpCore(ctl)

	s := Server{store: a}

	a.EXPECT().GetRequest("missing").Return(nil, store.ErrRequestNotFound).Times(1)

	router := offerHelpRouter(&s, &schema.Account{ID: uuid.New(), Username: "alice"})

	w := postForm(router, "/help/missing/", url.Values{})

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestNotificationsListWithoutAccount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockHandUpCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// no middleware attaches an account
	router.GET("/notifications/", s.notificationsList)

	req := httptest.NewRequest("GET", "/notifications/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestNotificationsList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockHandUpCore(ctl)

	s := Server{store: a}

	recipientID := uuid.New()

	a.EXPECT().ListNotifications(recipientID).Return([]schema.Notification{
		{Message: "newest"},
		{Message: "older"},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("account", &schema.Account{ID: recipientID, Username: "bob"})
	})
	router.GET("/notifications/", s.notificationsList)

	req := httptest.NewRequest("GET", "/notifications/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Regexp(t, `newest.*older`, w.Body.String(), "wrong notification order")
}
