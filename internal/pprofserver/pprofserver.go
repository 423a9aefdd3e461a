// Package pprofserver serves Go's pprof endpoints on a loopback-only listener
// so that profiles can be taken in production without exposing the endpoints
// to the world.
package pprofserver

import (
	"fmt"
	"github.com/myrjola/casefile/internal/errors"
	"log/slog"
	"net/http"
	"net/http/pprof"
)

func Handle(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	Handle(mux)
	return mux
}

// Launch starts a pprof server at the ipv6 loopback address ::1 and given port.
// It runs until the process exits.
func Launch(port string, logger *slog.Logger) {
	go func() {
		addr := fmt.Sprintf("[::1]%s", port)
		logger.Info("starting pprof server", "addr", addr)
		srv := &http.Server{ //nolint:gosec // loopback only, no timeouts needed.
			Addr:    addr,
			Handler: newServeMux(),
		}
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("pprof server stopped", errors.SlogError(err))
		}
	}()
}
