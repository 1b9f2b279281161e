package controllers

import (
	"net/http"

	"migranthealth/models"
	"migranthealth/services"
	"migranthealth/store"
	"migranthealth/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Store *store.Store
}

func Auth(router *gin.Engine, s *store.Store) {
	ctrl := &AuthController{Store: s}
	router.POST("/auth/login", ctrl.Login)
	router.POST("/auth/logout", ctrl.Logout)
	router.GET("/session", ctrl.Session)
}

type loginRequest struct {
	Name string          `json:"name"`
	Role models.UserRole `json:"role"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	user, err := services.Login(ctrl.Store, req.Name, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(user))
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	services.Logout(ctrl.Store)
	c.JSON(http.StatusOK, utils.SuccessResponse(utils.LOGGED_OUT))
}

func (ctrl *AuthController) Session(c *gin.Context) {
	user := ctrl.Store.CurrentUser()
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{
		"screen":      services.ResolveScreen(user),
		"currentUser": user,
	}))
}
