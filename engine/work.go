package main

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/pusher"
)

type Worker struct {
	Config      Config
	RedisClient *redis.Redis
	Pusher      *pusher.Pusher[message.AnalysisResult]
}

func NewWorker(c Config, rds *redis.Redis) *Worker {
	return &Worker{
		Config:      c,
		RedisClient: rds,
		Pusher:      NewResultPusher(rds, c),
	}
}

// Run claims partitions and drains them until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	for {
		topic, ok, err := w.GetFreeTopic(ctx)
		if err != nil {
			return err
		}

		if ok {
			if err = w.OnceIntervalWorking(ctx, topic); err != nil {
				return err
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.Config.IdleInterval):
		}
	}
}

// OnceIntervalWorking pops and answers the tasks of a claimed partition
// until it is empty, then gives up the ownership.
func (w *Worker) OnceIntervalWorking(ctx context.Context, topic message.RedisPartition) (err error) {
	logger := logx.WithContext(ctx)
	logger.Infof("start working at partition %d", topic)

	defer func() {
		if _, delErr := w.RedisClient.DelCtx(context.Background(), topic.OwnerKey()); delErr != nil && err == nil {
			err = delErr
		}
	}()

	var (
		m     string
		task  message.AnalysisTask
		fresh bool
	)
	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		if err = w.RedisClient.ExpireCtx(ctx, topic.OwnerKey(), w.Config.OwnerExpire); err != nil {
			return err
		}

		m, err = w.RedisClient.RpopCtx(ctx, topic.ListKey())
		if errors.Is(err, redis.Nil) || (err == nil && m == "") {
			return nil
		}
		if err != nil {
			return err
		}

		if task, err = message.NewAnalysisTask(m); err != nil {
			logger.Errorf("drop malformed task %q: %v", m, err)
			continue
		}

		if fresh, err = w.isFresh(ctx, task.Uid); err != nil {
			if _, pushErr := w.RedisClient.RpushCtx(context.Background(), topic.ListKey(), m); pushErr != nil {
				logger.Errorf("requeue task %s: %v", task.Uid, pushErr)
			}
			return err
		}

		if !fresh {
			logger.Infof("skip task %s queued %v ago", task.Uid, task.TimeStamp.Since())
			continue
		}

		w.Pusher.AddMessages(w.Assess(ctx, task))
	}
}

// isFresh reports whether uid still waits for an answer: its task key has
// not expired and no result was stored yet.
func (w *Worker) isFresh(ctx context.Context, uid message.GameUid) (bool, error) {
	queued, err := w.RedisClient.GetCtx(ctx, uid.TaskKey())
	if err != nil || queued == "" {
		return false, err
	}

	done, err := w.RedisClient.GetCtx(ctx, uid.ResultKey())
	if err != nil {
		return false, err
	}
	return done == "", nil
}

func (w *Worker) Assess(ctx context.Context, task message.AnalysisTask) message.AnalysisResult {
	logger := logx.WithContext(ctx)
	result := message.AnalysisResult{
		TimeStamp: message.NewTimeStamp(time.Now()),
		Uid:       task.Uid,
	}

	if err := task.Board.Validate(); err != nil {
		result.Error = err.Error()
		result.Move = chess.NoMove
		logger.Errorf("analysis %s: %v", task.Uid, err)
		return result
	}

	engine, err := assess.NewEngine(task.Board.Size, assess.WithPlayer(task.Player))
	if err != nil {
		result.Error = err.Error()
		result.Move = task.Board.FirstEmpty()
		logger.Errorf("analysis %s: %v", task.Uid, err)
		return result
	}

	searchCtx, cancel := context.WithTimeout(ctx, w.Config.SearchTimeout)
	defer cancel()

	res, err := engine.Search(searchCtx, &task.Board)
	result.Result = res
	if err != nil {
		result.Error = err.Error()
		result.Move = task.Board.FirstEmpty()
	}

	logger.Infof("analysis %s: %v (%s, depth %d, %d nodes, %v, queued %v)", task.Uid, res.Move, res.Reason, res.Depth, res.Nodes, res.Elapsed, task.TimeStamp.Since())
	return result
}
