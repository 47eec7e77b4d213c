package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agent/internal/transport/http/middleware"
)

func NewRouter(moveHandler *MoveHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/api/health", Health)
	router.POST("/api/move", moveHandler.ChooseMove)
	router.POST("/api/drop", moveHandler.Drop)

	return router
}
