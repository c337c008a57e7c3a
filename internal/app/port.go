package app

import (
	"fmt"

	"github.com/bamorim/bindpls/internal/finder"
	"github.com/bamorim/bindpls/internal/process"
)

// PortRequest carries CLI-level inputs for a port search. StartSet
// distinguishes an explicit --port 0 (ask the OS) from an absent flag
// (fall back to the configured base_port).
type PortRequest struct {
	Start    int
	StartSet bool
	Host     string
	Stop     int
	Exclude  []int
	Count    int
}

// FindPort returns the first bindable port for the request.
func FindPort(opts Options, req PortRequest) (int, error) {
	req.Count = 1
	ports, err := FindPorts(opts, req)
	if err != nil {
		return 0, err
	}
	return ports[0], nil
}

// FindPorts returns req.Count bindable ports, distinct and ascending.
func FindPorts(opts Options, req PortRequest) ([]int, error) {
	var result []int
	err := withContext(opts, func(ctx *context) error {
		start := ctx.config.BasePort
		if req.StartSet {
			start = req.Start
		}
		stop := req.Stop
		if stop == 0 {
			stop = ctx.config.StopPort
		}
		count := req.Count
		if count == 0 {
			count = 1
		}
		search := finder.Request{
			Port:     start,
			Host:     req.Host,
			StopPort: stop,
			Exclude:  req.Exclude,
			Prober:   ctx.prober,
			Log:      ctx.logger,
		}
		ports, err := finder.Ports(count, search)
		if err != nil {
			if kind, ok := finder.KindOf(err); ok && kind == finder.KindExhausted {
				describeHolder(ctx, start)
			}
			return wrapSearchErr(err)
		}
		for _, p := range ports {
			if err := ctx.logger.Event("PORT_FOUND", fmt.Sprintf("port=%d", p)); err != nil {
				ctx.logger.Warnf("event log: %v", err)
			}
		}
		result = ports
		return nil
	})
	return result, err
}

// describeHolder names the process squatting on the starting port, which is
// usually the interesting one when a narrow range comes up empty.
func describeHolder(ctx *context, port int) {
	if !ctx.logger.Verbose || port == 0 {
		return
	}
	if info, err := process.FindByPort(port); err == nil {
		ctx.logger.Debugf("port %d held by %s (pid %d)", port, info.Command, info.PID)
	}
}
