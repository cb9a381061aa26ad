package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/handup/handup-api/logmodule"
	"github.com/handup/handup-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.HandUpCore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         store.NewHandUpStore(ormDB),
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(logmodule.Ginrus("Web"))

	// pages open to anonymous visitors
	r.GET("/", s.index)
	r.GET("/signup/", s.signupForm)
	r.POST("/signup/", s.signup)
	r.GET("/login/", s.loginForm)
	r.POST("/login/", s.login)
	r.GET("/settings/", s.settings)

	// the request detail page is embeddable, unlike the other request views
	detailRoute := r.Group("")
	detailRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	detailRoute.GET("/request/:request_id/", s.requestDetail)

	// everything below requires an authenticated session
	authorized := r.Group("")
	authorized.Use(s.sessionMiddleware())
	authorized.Use(s.currentAccountMiddleware())
	{
		authorized.GET("/logout/", s.logout)
		authorized.POST("/logout/", s.logout)

		authorized.GET("/profile/", s.myProfileRedirect)
		authorized.GET("/profile/:username/", s.profileView)

		authorized.GET("/requests/", s.requestsList)
		authorized.GET("/add-request/", s.addRequestForm)
		authorized.POST("/add-request/", s.addRequest)

		authorized.GET("/help/:request_id/", s.helpView)
		authorized.POST("/help/:request_id/", s.offerHelp)

		authorized.GET("/notifications/", s.notificationsList)

		authorized.GET("/accept/:request_id/", s.acceptRequest)
		authorized.POST("/accept/:request_id/", s.acceptRequest)
		authorized.GET("/complete/:request_id/", s.completeRequest)
		authorized.POST("/complete/:request_id/", s.completeRequest)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
