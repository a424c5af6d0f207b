package main

import (
	"context"
	"time"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
)

// GetFreeTopic claims the first partition that has queued tasks and no
// owner. ok is false when every partition is empty or owned.
func (w *Worker) GetFreeTopic(ctx context.Context) (topic message.RedisPartition, ok bool, err error) {
	for _, t := range message.RedisPartitions {
		length, err := w.RedisClient.LlenCtx(ctx, t.ListKey())
		if err != nil {
			return -1, false, err
		}

		if length == 0 {
			continue
		}

		claimed, err := w.RedisClient.SetnxExCtx(ctx, t.OwnerKey(), string(message.NewTimeStamp(time.Now())), w.Config.OwnerExpire)
		if err != nil {
			return -1, false, err
		}

		if claimed {
			return t, true, nil
		}
	}

	return -1, false, nil
}
