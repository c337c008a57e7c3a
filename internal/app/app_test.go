package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// fakeProber scripts availability so operations can be tested without
// binding anything.
type fakeProber struct {
	busyPorts map[int]bool
	osGrant   int
	busyPaths map[string]bool
	allBusy   bool
}

func (f fakeProber) Port(host string, port int) (int, bool, error) {
	if port == 0 {
		grant := f.osGrant
		if grant == 0 {
			grant = 54321
		}
		return grant, true, nil
	}
	if f.allBusy || f.busyPorts[port] {
		return 0, false, nil
	}
	return port, true, nil
}

func (f fakeProber) Socket(path string) (bool, error) {
	if f.allBusy || f.busyPaths[path] {
		return false, nil
	}
	return true, nil
}

func setupConfig(t *testing.T, overrides map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := map[string]any{
		"base_port":       0,
		"stop_port":       65535,
		"socket_dir":      t.TempDir(),
		"socket_attempts": 100,
	}
	for key, value := range overrides {
		cfg[key] = value
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
