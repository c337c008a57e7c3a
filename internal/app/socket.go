package app

import (
	"path/filepath"

	"github.com/bamorim/bindpls/internal/finder"
)

const defaultSocketName = "bindpls.sock"

// SocketRequest carries CLI-level inputs for a socket-path search. An empty
// Path starts from <socket_dir>/bindpls.sock; zero Attempts falls back to
// the configured budget.
type SocketRequest struct {
	Path     string
	Attempts int
}

// FindSocket returns the first bindable unix-socket path for the request,
// creating the parent directory chain of the returned path as needed.
func FindSocket(opts Options, req SocketRequest) (string, error) {
	var result string
	err := withContext(opts, func(ctx *context) error {
		path := req.Path
		if path == "" {
			path = filepath.Join(ctx.config.SocketDir, defaultSocketName)
		}
		attempts := req.Attempts
		if attempts == 0 {
			attempts = ctx.config.SocketAttempts
		}
		search := finder.Request{
			Path:     path,
			Attempts: attempts,
			Prober:   ctx.prober,
			Log:      ctx.logger,
		}
		found, err := finder.Socket(search)
		if err != nil {
			return wrapSearchErr(err)
		}
		if err := ctx.logger.Event("SOCKET_FOUND", "path="+found); err != nil {
			ctx.logger.Warnf("event log: %v", err)
		}
		result = found
		return nil
	})
	return result, err
}
