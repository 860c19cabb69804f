package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/sessions"
)

// AuthProvider is the auth service surface the controller needs.
type AuthProvider interface {
	Signup(email, password, adminInvite string) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

type AuthController struct {
	Auth     AuthProvider
	Sessions *sessions.Store
	Logger   *zap.Logger
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	AdminInvite string `json:"adminInvite"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	user, err := ac.Auth.Signup(req.Email, req.Password, req.AdminInvite)
	if err != nil {
		apperrors.Handle(c, err)
		return
	}
	ac.establishSession(c, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	user, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		apperrors.Handle(c, err)
		return
	}
	ac.establishSession(c, user)
}

// Logout destroys the current session unconditionally; calling it without a
// session is a no-op that still succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessions.CookieName); err == nil && token != "" {
		ac.Sessions.Delete(token)
	}
	sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reads session state only; it never touches the user store.
func (ac *AuthController) Me(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          gin.H{"id": sess.UserID, "email": sess.Email, "role": sess.Role},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false, "user": nil})
}

func (ac *AuthController) establishSession(c *gin.Context, user *models.User) {
	sess, err := ac.Sessions.Create(user.ID, user.Email, user.Role)
	if err != nil {
		ac.Logger.Error("Failed to create session", zap.Error(err))
		apperrors.Handle(c, apperrors.Wrap(apperrors.ErrInternal, err))
		return
	}
	sessions.SetCookie(c, sess)
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}
