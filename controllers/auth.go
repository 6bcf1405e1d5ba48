package controllers

import (
	"net/http"

	"MediSure/config/authorization"
	"MediSure/services"
	"MediSure/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Auth(router *gin.RouterGroup) {
	router.POST("/signup", ctl.Signup)
	router.POST("/login", ctl.Login)
	router.GET("/logout", ctl.Logout)
	router.GET("/checkAuth", authorization.CheckAuth(ctl.svc.Resolver, ctl.cookie.Name))
}

/*
* Bind the signup fields, the service validates them rule by rule
* On success the session id goes into the cookie and the body
 */
func (ctl *Controller) Signup(c *gin.Context) {
	var in services.SignupInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := ctl.svc.Auth.Signup(c.Request.Context(), in)
	if err != nil {
		util.Fail(c, err)
		return
	}
	ctl.setSessionCookie(c, res.SessionID)
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{
		"result": res.SessionID,
		"userId": res.UserID,
		"token":  res.Token,
	}))
}

/*
* The current cookie, if any, is passed along so a live session is refused
 */
func (ctl *Controller) Login(c *gin.Context) {
	var in services.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := ctl.svc.Auth.Login(c.Request.Context(), in, authorization.SessionID(c, ctl.cookie.Name))
	if err != nil {
		util.Fail(c, err)
		return
	}
	ctl.setSessionCookie(c, res.SessionID)
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{
		"result": res.SessionID,
		"userId": res.UserID,
		"token":  res.Token,
	}))
}

// Logout clears the cookie whatever happens to the stored session.
func (ctl *Controller) Logout(c *gin.Context) {
	err := ctl.svc.Auth.Logout(c.Request.Context(), authorization.SessionID(c, ctl.cookie.Name))
	ctl.clearSessionCookie(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"result": util.LOGOUT_SUCCESSFUL}))
}
