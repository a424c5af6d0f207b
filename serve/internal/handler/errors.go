package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/model"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/logic"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, logic.BoardSizeOutOfRangeErr),
		errors.Is(err, logic.InvalidBoardErr),
		errors.Is(err, logic.InvalidPlayerErr),
		errors.Is(err, message.ErrGameUid),
		errors.Is(err, chess.ErrOutOfRange),
		errors.Is(err, chess.ErrOccupied):
		return http.StatusBadRequest
	case errors.Is(err, logic.GameNotFoundErr),
		errors.Is(err, logic.AnalysisNotFoundErr):
		return http.StatusNotFound
	case errors.Is(err, logic.NotYourTurnErr),
		errors.Is(err, chess.ErrGameOver),
		errors.Is(err, model.ErrLockTimeout):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
