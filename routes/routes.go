package routes

import (
	"migranthealth/controllers"
	"migranthealth/store"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, s *store.Store) {

	//public
	controllers.Auth(r, s)
	//role gated dashboards
	controllers.Patient(r, s)
	controllers.Doctor(r, s)
	controllers.Admin(r, s)
}
