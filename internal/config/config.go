package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultBasePort       = 0 // 0 = let the OS pick
	defaultStopPort       = 65535
	defaultSocketDir      = "/tmp/bindpls"
	defaultSocketAttempts = 100

	maxPort = 65535
)

// Config represents user configuration on disk.
type Config struct {
	BasePort       int    `json:"base_port"`
	StopPort       int    `json:"stop_port"`
	SocketDir      string `json:"socket_dir"`
	SocketAttempts int    `json:"socket_attempts"`
	LogFile        string `json:"log_file"`
}

type configOnDisk struct {
	BasePort       *int    `json:"base_port"`
	StopPort       *int    `json:"stop_port"`
	SocketDir      *string `json:"socket_dir"`
	SocketAttempts *int    `json:"socket_attempts"`
	LogFile        *string `json:"log_file"`
}

func Default() Config {
	return Config{
		BasePort:       defaultBasePort,
		StopPort:       defaultStopPort,
		SocketDir:      defaultSocketDir,
		SocketAttempts: defaultSocketAttempts,
		LogFile:        "",
	}
}

func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	path = ExpandPath(path)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	} else if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var raw configOnDisk
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := Default()
	if raw.BasePort != nil {
		cfg.BasePort = *raw.BasePort
	}
	if raw.StopPort != nil {
		cfg.StopPort = *raw.StopPort
	}
	if raw.SocketDir != nil {
		cfg.SocketDir = strings.TrimSpace(*raw.SocketDir)
	}
	if raw.SocketAttempts != nil {
		cfg.SocketAttempts = *raw.SocketAttempts
	}
	if raw.LogFile != nil {
		cfg.LogFile = strings.TrimSpace(*raw.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	path = ExpandPath(path)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func (c Config) Validate() error {
	if c.BasePort < 0 || c.BasePort > maxPort {
		return fmt.Errorf("base_port must be between 0 and %d", maxPort)
	}
	if c.StopPort < 1 || c.StopPort > maxPort {
		return fmt.Errorf("stop_port must be between 1 and %d", maxPort)
	}
	if c.BasePort > c.StopPort {
		return fmt.Errorf("base_port must be <= stop_port")
	}
	if c.SocketAttempts < 1 {
		return fmt.Errorf("socket_attempts must be >= 1")
	}
	if c.SocketDir == "" {
		return fmt.Errorf("socket_dir must not be empty")
	}
	return nil
}

func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}
