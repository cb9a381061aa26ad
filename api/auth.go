package api

import (
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/handup/handup-api/schema"
	"github.com/handup/handup-api/store"
)

// sessionCookie carries the signed session token between requests.
const sessionCookie = "handup_session"

const loginPath = "/login/"

// loginForm renders the login page context.
func (s *Server) loginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "password"},
	})
}

// login is the API for creating a session from a username/password pair
func (s *Server) login(c *gin.Context) {
	logger := log.WithField("api", "login")

	var params struct {
		Username string `form:"username" json:"username" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	if err := c.ShouldBind(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	account, err := s.store.AuthenticateAccount(params.Username, params.Password)
	if err != nil {
		if err == store.ErrInvalidCredentials {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
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

// logout terminates the current session unconditionally, whether or not
// one existed.
func (s *Server) logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, loginPath)
}

// issueSession signs a session token for a username and sets it as an
// HttpOnly cookie.
func (s *Server) issueSession(c *gin.Context, username string) error {
	now := time.Now()
	expire := time.Duration(viper.GetInt("jwt.expire")) * time.Hour
	exp := now.Add(expire)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.StandardClaims{
		Issuer:    "handup-api",
		Subject:   username,
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
		Audience:  "session",
	})

	tokenString, err := token.SignedString(s.jwtPrivateKey)
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie, tokenString, int(expire.Seconds()), "/", "", false, true)
	return nil
}

// sessionMiddleware authorizes a request from its session cookie, or from
// an Authorization header when no cookie is present. Requests without a
// valid session are redirected to the login page.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(sessionCookie)
		if err != nil {
			tokenString, err = jwtrequest.AuthorizationHeaderExtractor.ExtractToken(c.Request)
		}
		if err != nil {
			redirectToLogin(c)
			return
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims,
			func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}

				return &s.jwtPrivateKey.PublicKey, nil
			})

		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		c.Set("requester", claims.Subject)
		c.Next()
	}
}

// currentAccountMiddleware resolves the session's username into an account
// record. It attaches an "account" key in gin's context.
func (s *Server) currentAccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetString("requester")
		account, err := s.store.GetAccount(requester)

		if err == store.ErrAccountNotFound {
			redirectToLogin(c)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		c.Set("account", account)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

// currentAccount returns the account attached by currentAccountMiddleware.
func currentAccount(c *gin.Context) (*schema.Account, bool) {
	v, ok := c.Get("account")
	if !ok {
		return nil, false
	}

	a, ok := v.(*schema.Account)
	return a, ok
}
