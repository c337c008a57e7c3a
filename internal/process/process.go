// Package process identifies which process holds a busy TCP port, for
// diagnostics only. It shells out to lsof, so results are best-effort.
package process

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

type Info struct {
	PID     int
	Command string
}

// FindByPort returns the process listening on the given TCP port.
func FindByPort(port int) (*Info, error) {
	cmd := exec.Command("lsof", "-nP", fmt.Sprintf("-iTCP:%d", port), "-sTCP:LISTEN", "-Fpc")
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	info := &Info{}
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		if len(line) < 2 {
			continue
		}
		switch line[0] {
		case 'p':
			if pid, err := strconv.Atoi(string(line[1:])); err == nil {
				info.PID = pid
			}
		case 'c':
			info.Command = string(line[1:])
		}
		if info.PID != 0 && info.Command != "" {
			break
		}
	}
	if info.PID == 0 {
		return nil, errors.New("process not found")
	}
	return info, nil
}
