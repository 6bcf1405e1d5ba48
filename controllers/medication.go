package controllers

import (
	"net/http"

	"MediSure/schedule"
	"MediSure/services"
	"MediSure/util"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Medication(router *gin.RouterGroup) {
	router.GET("/user", ctl.ListMedications)
	router.POST("/add", ctl.AddMedication)
	router.POST("/id", ctl.RecordDose)
	router.GET("/schedule/today", ctl.TodaySchedule)
	router.POST("/schedule/action", ctl.ScheduleAction)
}

func (ctl *Controller) ListMedications(c *gin.Context) {
	meds, err := ctl.svc.Medications.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"medications": meds}))
}

func (ctl *Controller) AddMedication(c *gin.Context) {
	var in services.MedicationInput
	if !bindJSON(c, &in) {
		return
	}
	med, err := ctl.svc.Medications.Add(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"result": util.SUCCESS, "medicationId": med.ID.Hex()}))
}

/*
* Records one dosage against a medication and optionally adds a frequency time
 */
func (ctl *Controller) RecordDose(c *gin.Context) {
	var in services.DoseInput
	if !bindJSON(c, &in) {
		return
	}
	dosage, err := ctl.svc.Medications.RecordDose(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"result": util.SUCCESS, "dosageId": dosage.ID.Hex()}))
}

func (ctl *Controller) TodaySchedule(c *gin.Context) {
	slots, err := ctl.svc.Schedule.Today(c.Request.Context(), currentUserID(c))
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"slots": slots}))
}

type scheduleActionRequest struct {
	Slots  schedule.State  `json:"slots"`
	Action schedule.Action `json:"action"`
}

/*
* The client sends the slots it currently shows together with the action
* Without slots the action applies to today's schedule
 */
func (ctl *Controller) ScheduleAction(c *gin.Context) {
	var req scheduleActionRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	userID := currentUserID(c)

	state := req.Slots
	if state == nil {
		today, err := ctl.svc.Schedule.Today(ctx, userID)
		if err != nil {
			util.Fail(c, err)
			return
		}
		state = today
	}

	next, err := ctl.svc.Schedule.Apply(ctx, userID, state, req.Action)
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"slots": next}))
}
