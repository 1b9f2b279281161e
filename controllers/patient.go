package controllers

import (
	"net/http"

	"migranthealth/models"
	"migranthealth/services"
	"migranthealth/store"
	"migranthealth/utils"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	Store *store.Store
}

func Patient(router *gin.Engine, s *store.Store) {
	ctrl := &PatientController{Store: s}
	patient := router.Group("/patient", RequireRole(s, models.RolePatient))
	{
		patient.POST("/assessment/create", ctrl.CreateAssessment)
		patient.GET("/assessments/fetch", ctrl.FetchMyAssessments)
		patient.GET("/healthCamps/fetchAll", ctrl.FetchAllHealthCamps)
	}
}

func (ctrl *PatientController) CreateAssessment(c *gin.Context) {
	var draft services.AssessmentDraft
	if err := c.BindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	assessment, err := services.SubmitAssessment(ctrl.Store, userFromContext(c), draft)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(assessment))
}

func (ctrl *PatientController) FetchMyAssessments(c *gin.Context) {
	user := userFromContext(c)
	c.JSON(http.StatusOK, utils.SuccessResponse(ctrl.Store.AssessmentsByPatient(user.ID)))
}

func (ctrl *PatientController) FetchAllHealthCamps(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(ctrl.Store.HealthCamps()))
}
