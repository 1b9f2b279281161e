package controllers

import (
	"net/http"

	"migranthealth/models"
	"migranthealth/services"
	"migranthealth/store"
	"migranthealth/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Store *store.Store
}

func Admin(router *gin.Engine, s *store.Store) {
	ctrl := &AdminController{Store: s}
	admin := router.Group("/admin", RequireRole(s, models.RoleAdmin))
	{
		admin.GET("/users/fetchAll", ctrl.FetchAllUsers)
		admin.GET("/assessments/fetchAll", ctrl.FetchAllAssessments)
		admin.GET("/healthCamps/fetchAll", ctrl.FetchAllHealthCamps)
		admin.POST("/healthCamp/create", ctrl.CreateHealthCamp)
		admin.PATCH("/doctor/approval/:doctorId", ctrl.SetDoctorApproval)
		admin.GET("/stats", ctrl.FetchStats)
	}
}

func (ctrl *AdminController) FetchAllUsers(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(ctrl.Store.Users()))
}

func (ctrl *AdminController) FetchAllAssessments(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(ctrl.Store.Assessments()))
}

func (ctrl *AdminController) FetchAllHealthCamps(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(ctrl.Store.HealthCamps()))
}

func (ctrl *AdminController) CreateHealthCamp(c *gin.Context) {
	var draft services.CampDraft
	if err := c.BindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	camp, err := services.CreateHealthCamp(ctrl.Store, userFromContext(c), draft)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(camp))
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

func (ctrl *AdminController) SetDoctorApproval(c *gin.Context) {
	doctorId := c.Param("doctorId")
	var req approvalRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	if err := services.SetDoctorApproval(ctrl.Store, doctorId, req.Approved); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	user, _ := ctrl.Store.UserByID(doctorId)
	c.JSON(http.StatusOK, utils.SuccessResponse(user))
}

func (ctrl *AdminController) FetchStats(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse(services.ComputeStats(ctrl.Store)))
}
