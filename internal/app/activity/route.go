package activity

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.POST("/activity", handler.RecordActivity)
}
