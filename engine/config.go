package main

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Log   logx.LogConf
	Redis redis.RedisConf
	// profiling listen address, empty disables it
	Pprof         string        `json:",optional"`
	SearchTimeout time.Duration `json:",default=10s"`
	PushInterval  time.Duration `json:",default=200ms"`
	IdleInterval  time.Duration `json:",default=1s"`
	// seconds
	OwnerExpire  int `json:",default=180"`
	ResultExpire int `json:",default=600"`
}
