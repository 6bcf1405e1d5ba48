package controllers

import (
	"net/http"
	"time"

	"MediSure/config/authorization"
	"MediSure/services"
	"MediSure/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CookieOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type Controller struct {
	svc    *services.Services
	cookie CookieOptions
}

func New(svc *services.Services, cookie CookieOptions) *Controller {
	if cookie.Name == "" {
		cookie.Name = util.AuthCookie
	}
	return &Controller{svc: svc, cookie: cookie}
}

// Protect is the middleware every private route group runs behind.
func (ctl *Controller) Protect() gin.HandlerFunc {
	return authorization.ProtectRoute(ctl.svc.Resolver, ctl.cookie.Name)
}

func (ctl *Controller) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctl.cookie.Name, sessionID, int(ctl.cookie.MaxAge.Seconds()), "/", "", ctl.cookie.Secure, true)
}

func (ctl *Controller) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctl.cookie.Name, "", -1, "/", "", ctl.cookie.Secure, true)
}

// currentUserID is only called behind Protect, which always sets the user.
func currentUserID(c *gin.Context) primitive.ObjectID {
	user, ok := authorization.CurrentUser(c)
	if !ok {
		return primitive.NilObjectID
	}
	return user.ID
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.Fail(c, &util.AppError{Kind: util.KindValidation, Message: util.INVALID_REQUEST_BODY, Err: err})
		return false
	}
	return true
}
