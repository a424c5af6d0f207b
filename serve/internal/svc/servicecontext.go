package svc

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message/moverecord"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/model"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/pusher"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/config"
)

type Recorder interface {
	RecordStart(*moverecord.GameStartRecode)
	RecordMove(*moverecord.MoveRecode)
	RecordEnd(*moverecord.GameEndRecode)
}

type nopRecorder struct{}

func (nopRecorder) RecordStart(*moverecord.GameStartRecode) {}
func (nopRecorder) RecordMove(*moverecord.MoveRecode)       {}
func (nopRecorder) RecordEnd(*moverecord.GameEndRecode)     {}

type ServiceContext struct {
	Config          config.Config
	RedisClient     *redis.Redis
	Recorder        Recorder
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
	stops           []func()
}

func NewServiceContext(c config.Config) *ServiceContext {
	var recorder Recorder = nopRecorder{}
	var stops []func()

	if c.MongoConf.Url != "" {
		r := moverecord.MustNewRecorder(c.MongoConf.Url, c.MongoConf.DataBaseName, c.MongoConf.RecordInterval)
		r.Start()
		recorder = r
		stops = append(stops, r.Stop)
	} else {
		logx.Info("MongoConf.Url is empty, game records are disabled")
	}

	svcCtx := NewServiceContextWith(c, redis.MustNewRedis(c.Redis), recorder)
	svcCtx.stops = append(svcCtx.stops, stops...)
	return svcCtx
}

// NewServiceContextWith wires c around an existing redis client and
// recorder, and starts one pusher per analysis partition.
func NewServiceContextWith(c config.Config, rds *redis.Redis, recorder Recorder) *ServiceContext {
	svcCtx := &ServiceContext{
		Config:          c,
		RedisClient:     rds,
		Recorder:        recorder,
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
	}

	for _, redisPartition := range message.RedisPartitions {
		partitionLock := model.NewLock(rds, redisPartition.LockName())

		p := pusher.NewPusher(
			pusher.WithPushInterval[string](c.Analysis.PushInterval),
			pusher.WithPushLogic(func(pushMessages ...string) error {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				return partitionLock.Do(ctx, func() error {
					var messages []any
					for _, m := range pushMessages {
						messages = append(messages, m)
					}

					if _, err := rds.LpushCtx(ctx, redisPartition.ListKey(), messages...); err != nil {
						return err
					}

					return rds.ExpireCtx(ctx, redisPartition.ListKey(), c.Analysis.ResultExpire)
				})
			}),
		)
		p.Start()

		svcCtx.PartitionPusher[redisPartition] = p
		svcCtx.stops = append(svcCtx.stops, p.Stop)
	}

	return svcCtx
}

// Stop flushes the partition pushers and the recorder.
func (s *ServiceContext) Stop() {
	for _, stop := range s.stops {
		stop()
	}
}

func (s *ServiceContext) GameLock(uid message.GameUid) *model.RedisLock {
	l := model.NewLock(s.RedisClient, uid.LockName())
	l.SetExpire(s.Config.Game.LockExpire)
	return l
}
