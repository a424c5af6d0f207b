package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	v1 := router.Group("/v1")

	v1.POST("/games", CreateGameHandler(svcCtx))
	v1.GET("/games/:uid", GetGameHandler(svcCtx))
	v1.POST("/games/:uid/moves", PlayMoveHandler(svcCtx))
	v1.POST("/games/:uid/rematch", RematchHandler(svcCtx))

	v1.POST("/best-move", BestMoveHandler(svcCtx))

	v1.POST("/analysis", PostAnalysisHandler(svcCtx))
	v1.GET("/analysis/:uid", InquireAnalysisHandler(svcCtx))
}
