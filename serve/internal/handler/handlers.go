package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/logic"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func gameUid(c *gin.Context) (message.GameUid, bool) {
	uid, err := message.ParseGameUid(c.Param("uid"))
	if err != nil {
		writeError(c, err)
		return "", false
	}
	return uid, true
}

func CreateGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateGameRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := logic.NewCreateGameLogic(c.Request.Context(), svcCtx).CreateGame(&req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func GetGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := gameUid(c)
		if !ok {
			return
		}

		resp, err := logic.NewGetGameLogic(c.Request.Context(), svcCtx).GetGame(uid)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func PlayMoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := gameUid(c)
		if !ok {
			return
		}

		var req types.MoveRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := logic.NewPlayMoveLogic(c.Request.Context(), svcCtx).PlayMove(uid, &req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func RematchHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := gameUid(c)
		if !ok {
			return
		}

		resp, err := logic.NewRematchLogic(c.Request.Context(), svcCtx).Rematch(uid)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func BestMoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BoardRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := logic.NewBestMoveLogic(c.Request.Context(), svcCtx).BestMove(&req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func PostAnalysisHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BoardRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := logic.NewAnalysisLogic(c.Request.Context(), svcCtx).PostAnalysis(&req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, resp)
	}
}

func InquireAnalysisHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := gameUid(c)
		if !ok {
			return
		}

		resp, err := logic.NewAnalysisLogic(c.Request.Context(), svcCtx).InquireAnalysis(uid)
		switch {
		case errors.Is(err, logic.AnalysisPendingErr):
			c.JSON(http.StatusAccepted, resp)
		case err != nil:
			writeError(c, err)
		default:
			c.JSON(http.StatusOK, resp)
		}
	}
}
