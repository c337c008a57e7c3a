package finder

// fakeProber scripts probe outcomes so walk logic can be tested without
// touching the network.
type fakeProber struct {
	busyPorts    map[int]bool
	portErrs     map[int]error
	osGrant      int // port handed out for a 0 probe
	busyPaths    map[string]bool
	pathErrs     map[string]error
	allPathsBusy bool
}

func (f fakeProber) Port(host string, port int) (int, bool, error) {
	if err, ok := f.portErrs[port]; ok {
		return 0, false, err
	}
	if port == 0 {
		grant := f.osGrant
		if grant == 0 {
			grant = 54321
		}
		return grant, true, nil
	}
	if f.busyPorts[port] {
		return 0, false, nil
	}
	return port, true, nil
}

func (f fakeProber) Socket(path string) (bool, error) {
	if err, ok := f.pathErrs[path]; ok {
		return false, err
	}
	if f.allPathsBusy {
		return false, nil
	}
	return !f.busyPaths[path], nil
}
