package debug

import (
	"net/http"
	_ "net/http/pprof"

	"go.uber.org/zap"

	"seoaudit/internal/log"
)

// StartPprof exposes the default pprof mux on its own listener. Only wired
// up when the service runs in dev mode.
func StartPprof(addr string) {
	go func() {
		log.Logger.Info("pprof listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Logger.Fatal("pprof failed", zap.Error(err))
		}
	}()
}
