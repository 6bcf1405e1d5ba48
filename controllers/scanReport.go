package controllers

import (
	"net/http"

	"MediSure/services"
	"MediSure/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) ScanReport(router *gin.RouterGroup) {
	router.POST("/scanReports", ctl.CreateScanReport)
	router.GET("/scanReports", ctl.ListScanReports)
	router.GET("/scanReports/:id", ctl.GetScanReport)
	router.GET("/scanReports/:id/images", ctl.GetScanReportImages)
	router.GET("/dashboard", ctl.Dashboard)
}

func (ctl *Controller) CreateScanReport(c *gin.Context) {
	var in services.ScanReportInput
	if !bindJSON(c, &in) {
		return
	}
	report, err := ctl.svc.ScanReports.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(gin.H{
		"reportId": report.ID.Hex(),
		"report":   services.Decorate(*report),
	}))
}

/*
* ?date=YYYY-MM-DD narrows the list to one day
 */
func (ctl *Controller) ListScanReports(c *gin.Context) {
	reports, err := ctl.svc.ScanReports.List(c.Request.Context(), currentUserID(c), c.Query("date"))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"count": len(reports), "reports": reports}))
}

func (ctl *Controller) GetScanReport(c *gin.Context) {
	report, err := ctl.svc.ScanReports.GetByID(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"report": report}))
}

func (ctl *Controller) GetScanReportImages(c *gin.Context) {
	images, details, err := ctl.svc.ScanReports.GetImages(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"images": images, "reportDetails": details}))
}

func (ctl *Controller) Dashboard(c *gin.Context) {
	dash, err := ctl.svc.Dashboard.Dashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"dashboard": dash}))
}
