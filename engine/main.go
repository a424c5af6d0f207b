package main

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/pprof"
)

var configFile = flag.String("f", "etc/engine.yaml", "the config file")

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())
	logx.MustSetup(c.Log)
	defer logx.Close()

	pprof.Run(c.Pprof)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w := NewWorker(c, redis.MustNewRedis(c.Redis))
	w.Pusher.Start()
	defer w.Pusher.Stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logx.Errorf("engine stopped: %v", err)
	}
}
