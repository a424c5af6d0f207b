package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/pprof"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/config"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/handler"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())
	c.MustSetUp()

	ctx := svc.NewServiceContext(c)
	defer ctx.Stop()

	if c.Mode == service.ProMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)
	if c.Pprof {
		pprof.Register(router)
	}

	server := &http.Server{
		Addr:    c.ListenOn,
		Handler: router,
	}

	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		fmt.Printf("Starting server at %s...\n", c.ListenOn)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Errorf("serve: %v", err)
			cancel()
		}
	}()

	<-stop.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Errorf("shutdown: %v", err)
	}
}
