package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	ListenOn string `json:",default=0.0.0.0:8000"`
	Pprof    bool   `json:",optional"`
	Redis    redis.RedisConf
	// an empty Url disables game records
	MongoConf struct {
		Url            string        `json:",optional"`
		DataBaseName   string        `json:",default=tic_tac_toe"`
		RecordInterval time.Duration `json:",default=1s"`
	}
	Game struct {
		MaxBoardSize int `json:",default=15"`
		// seconds
		SessionExpire int           `json:",default=3600"`
		LockExpire    int           `json:",default=15"`
		LockTimeout   time.Duration `json:",default=3s"`
		ThinkingDelay time.Duration `json:",default=500ms"`
		SearchTimeout time.Duration `json:",default=5s"`
	}
	Analysis struct {
		PushInterval time.Duration `json:",default=200ms"`
		// seconds
		ResultExpire int `json:",default=600"`
	}
}
