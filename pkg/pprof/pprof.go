package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Register mounts the runtime profiling handlers under /debug/pprof.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Run serves only the profiling handlers on addr in the background. An empty
// addr disables it.
func Run(addr string) {
	if addr == "" {
		return
	}

	router := gin.New()
	Register(router)
	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof server: %v", err)
		}
	}()
}
