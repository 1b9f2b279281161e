package controllers

import (
	"net/http"

	"migranthealth/models"
	"migranthealth/services"
	"migranthealth/store"
	"migranthealth/utils"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	Store *store.Store
}

func Doctor(router *gin.Engine, s *store.Store) {
	ctrl := &DoctorController{Store: s}
	doctor := router.Group("/doctor", RequireRole(s, models.RoleDoctor))
	{
		doctor.GET("/assessments/fetchAll", ctrl.FetchAllAssessments)
		doctor.GET("/assessments/pending", ctrl.FetchPendingAssessments)
		doctor.PATCH("/assessment/review/:assessmentId", ctrl.ReviewAssessment)
		doctor.PATCH("/appointment/status/:assessmentId", ctrl.UpdateAppointmentStatus)
	}
}

func (ctrl *DoctorController) FetchAllAssessments(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(ctrl.Store.Assessments()))
}

func (ctrl *DoctorController) FetchPendingAssessments(c *gin.Context) {
	pending := []models.MigrantAssessment{}
	for _, a := range ctrl.Store.Assessments() {
		if a.Diagnosis == "" {
			pending = append(pending, a)
		}
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(pending))
}

func (ctrl *DoctorController) ReviewAssessment(c *gin.Context) {
	assessmentId := c.Param("assessmentId")
	var input services.ReviewInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := services.ReviewAssessment(ctrl.Store, userFromContext(c), assessmentId, input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	assessment, _ := ctrl.Store.AssessmentByID(assessmentId)
	c.JSON(http.StatusOK, utils.SuccessResponse(assessment))
}

type statusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

func (ctrl *DoctorController) UpdateAppointmentStatus(c *gin.Context) {
	assessmentId := c.Param("assessmentId")
	var req statusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := services.UpdateAppointmentStatus(ctrl.Store, userFromContext(c), assessmentId, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	assessment, _ := ctrl.Store.AssessmentByID(assessmentId)
	c.JSON(http.StatusOK, utils.SuccessResponse(assessment))
}
