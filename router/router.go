package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nickshouse/Chao-Bot-sub000/api"
	"github.com/nickshouse/Chao-Bot-sub000/internal/auth"
)

func SetRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(auth.APIKeyAuthMiddleware())

	chaoBot := r.Group("/chao_bot")
	chaoBot.GET("/hello", api.Hello)

	petGroup := chaoBot.Group("/pet")
	petGroup.POST("/hatch", api.Hatch)
	petGroup.POST("/feed", api.Feed)
	petGroup.GET("/get", api.GetPet)
	petGroup.GET("/list", api.ListPets)
	petGroup.GET("/stats", api.GetStatSheet)

	inventoryGroup := chaoBot.Group("/inventory")
	inventoryGroup.GET("/get", api.GetInventory)
	inventoryGroup.POST("/adjust", api.AdjustInventory)

	adminGroup := chaoBot.Group("/admin")
	adminGroup.POST("/force_check", api.ForceLifecycleCheck)
	adminGroup.POST("/happiness", api.SetHappiness)
	adminGroup.POST("/grade", api.SetGrade)
	adminGroup.POST("/exp", api.SetExp)
	adminGroup.POST("/level", api.SetLevel)
	adminGroup.POST("/face", api.SetFace)

	return r
}
