package main

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/pusher"
)

// NewResultPusher batches analysis results into redis. Setex is idempotent,
// so a failed batch can be retried as a whole.
func NewResultPusher(rds *redis.Redis, c Config) *pusher.Pusher[message.AnalysisResult] {
	return pusher.NewPusher(
		pusher.WithPushInterval[message.AnalysisResult](c.PushInterval),
		pusher.WithPushLogic(func(results ...message.AnalysisResult) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			for _, result := range results {
				if err := rds.SetexCtx(ctx, result.Uid.ResultKey(), result.String(), c.ResultExpire); err != nil {
					return err
				}
			}
			return nil
		}),
	)
}
