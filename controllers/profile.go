package controllers

import (
	"net/http"

	"MediSure/services"
	"MediSure/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Profile(router *gin.RouterGroup) {
	router.GET("/user/profile", ctl.GetProfile)
	router.POST("/user/profileUpdate", ctl.UpdateProfile)
}

func (ctl *Controller) GetProfile(c *gin.Context) {
	user, err := ctl.svc.Profile.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"user": user}))
}

/*
* Only the fields present in the body are changed
 */
func (ctl *Controller) UpdateProfile(c *gin.Context) {
	var in services.ProfileInput
	if !bindJSON(c, &in) {
		return
	}
	user, err := ctl.svc.Profile.Update(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"result": util.SUCCESS, "user": user}))
}
