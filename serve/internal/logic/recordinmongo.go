package logic

import (
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message/moverecord"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
)

func recordStart(svcCtx *svc.ServiceContext, s message.GameSession) {
	svcCtx.Recorder.RecordStart(&moverecord.GameStartRecode{
		GameUid:     s.GameUid,
		BoardSize:   s.Game.Board.Size,
		WinLength:   s.Game.WinLength,
		FirstPlayer: s.Game.FirstPlayer.String(),
		AIPlayer:    s.AIPlayer.String(),
	})
}

// recordMove records the last move of the game, and the end of the game if
// that move finished it. res is nil for human moves.
func recordMove(svcCtx *svc.ServiceContext, s message.GameSession, player chess.Cell, res *assess.Result) {
	g := s.Game
	m := g.LastMove()
	recode := &moverecord.MoveRecode{
		GameUid:   s.GameUid,
		StepCount: g.StepCount(),
		Player:    player.String(),
		Row:       m.Row,
		Col:       m.Col,
	}

	if res != nil {
		recode.Reason = string(res.Reason)
		recode.Depth = res.Depth
		recode.Nodes = res.Nodes
		recode.Score = res.Score
	}

	svcCtx.Recorder.RecordMove(recode)

	if g.Over() {
		svcCtx.Recorder.RecordEnd(&moverecord.GameEndRecode{
			GameUid:   s.GameUid,
			Status:    string(g.Status),
			Winner:    g.Winner.String(),
			StepCount: g.StepCount(),
		})
	}
}
