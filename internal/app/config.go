package app

import (
	"fmt"
	"strconv"

	"github.com/bamorim/bindpls/internal/config"
)

func ConfigShow(opts Options) ([]string, error) {
	cfg, err := config.Load(resolveOptions(opts).ConfigPath)
	if err != nil {
		return nil, err
	}
	lines := []string{
		fmt.Sprintf("base_port: %d", cfg.BasePort),
		fmt.Sprintf("stop_port: %d", cfg.StopPort),
		fmt.Sprintf("socket_dir: %s", cfg.SocketDir),
		fmt.Sprintf("socket_attempts: %d", cfg.SocketAttempts),
		fmt.Sprintf("log_file: %s", cfg.LogFile),
	}
	return lines, nil
}

func ConfigGet(opts Options, key string) (string, error) {
	cfg, err := config.Load(resolveOptions(opts).ConfigPath)
	if err != nil {
		return "", err
	}
	switch key {
	case "base_port":
		return strconv.Itoa(cfg.BasePort), nil
	case "stop_port":
		return strconv.Itoa(cfg.StopPort), nil
	case "socket_dir":
		return cfg.SocketDir, nil
	case "socket_attempts":
		return strconv.Itoa(cfg.SocketAttempts), nil
	case "log_file":
		return cfg.LogFile, nil
	default:
		return "", NewCodeError(1, ErrInvalidConfigKey)
	}
}

func ConfigSet(opts Options, key, value string) (string, error) {
	cfgPath := resolveOptions(opts).ConfigPath
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", err
	}
	updated, err := setConfigValue(cfg, key, value)
	if err != nil {
		return "", NewCodeError(1, err)
	}
	if err := config.Save(cfgPath, updated); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set %s to %s", key, value), nil
}

func setConfigValue(cfg config.Config, key, value string) (config.Config, error) {
	switch key {
	case "base_port":
		val, err := strconv.Atoi(value)
		if err != nil {
			return cfg, ErrInvalidConfigValue
		}
		cfg.BasePort = val
	case "stop_port":
		val, err := strconv.Atoi(value)
		if err != nil {
			return cfg, ErrInvalidConfigValue
		}
		cfg.StopPort = val
	case "socket_dir":
		cfg.SocketDir = value
	case "socket_attempts":
		val, err := strconv.Atoi(value)
		if err != nil {
			return cfg, ErrInvalidConfigValue
		}
		cfg.SocketAttempts = val
	case "log_file":
		cfg.LogFile = value
	default:
		return cfg, ErrInvalidConfigKey
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
