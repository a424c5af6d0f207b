package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

type AnalysisLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAnalysisLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalysisLogic {
	return &AnalysisLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// PostAnalysis queues the position for the analysis workers.
func (l *AnalysisLogic) PostAnalysis(req *types.BoardRequest) (*types.AnalysisResponse, error) {
	b, player, err := parseBoardRequest(l.svcCtx, req)
	if err != nil {
		return nil, err
	}

	task := message.AnalysisTask{
		TimeStamp: message.NewTimeStamp(time.Now()),
		Uid:       message.NewGameUid(),
		Board:     b,
		Player:    player,
	}

	if err = l.svcCtx.RedisClient.SetexCtx(l.ctx, task.Uid.TaskKey(), string(task.TimeStamp), l.svcCtx.Config.Analysis.ResultExpire); err != nil {
		return nil, err
	}

	if err = SendMessageToRedisLists(l.ctx, l.svcCtx, task.String()); err != nil {
		return nil, err
	}

	l.Infof("analysis %s queued", task.Uid)
	return &types.AnalysisResponse{Uid: string(task.Uid)}, nil
}

// InquireAnalysis returns the stored result, AnalysisPendingErr while the
// task is queued, and AnalysisNotFoundErr for unknown or expired ids.
func (l *AnalysisLogic) InquireAnalysis(uid message.GameUid) (*types.AnalysisResultResponse, error) {
	str, err := l.svcCtx.RedisClient.GetCtx(l.ctx, uid.ResultKey())
	if err != nil {
		return nil, err
	}

	if str == "" {
		queued, err := l.svcCtx.RedisClient.GetCtx(l.ctx, uid.TaskKey())
		if err != nil {
			return nil, err
		}
		if queued == "" {
			return nil, AnalysisNotFoundErr
		}
		return &types.AnalysisResultResponse{Uid: string(uid), Status: "pending"}, AnalysisPendingErr
	}

	result, err := message.NewAnalysisResult(str)
	if err != nil {
		return nil, err
	}

	resp := &types.AnalysisResultResponse{
		Uid:    string(uid),
		Status: "done",
		Error:  result.Error,
	}
	if !result.Move.IsNoMove() {
		resp.Result = newSearchInfo(result.Result)
	}
	return resp, nil
}
