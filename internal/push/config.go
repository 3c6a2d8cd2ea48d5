package push

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"crew-casino/internal/config"
)

func ConfigFromServer(cfg config.ServerConfig) (Config, error) {
	out := Config{
		Enabled:             cfg.ResultPushEnabled,
		ConfigPath:          strings.TrimSpace(cfg.ResultPushConfigPath),
		ConfigReload:        time.Second,
		Workers:             cfg.ResultPushWorkers,
		RetryMax:            cfg.ResultPushRetryMax,
		RetryBase:           time.Duration(cfg.ResultPushRetryBaseMS) * time.Millisecond,
		FailureThreshold:    3,
		CircuitOpenDuration: 30 * time.Second,
		RequestTimeout:      5 * time.Second,
		DispatchBuffer:      2048,
	}
	if !out.Enabled {
		return out, nil
	}

	if out.Workers <= 0 {
		out.Workers = 4
	}
	if out.RetryMax < 0 {
		out.RetryMax = 0
	}
	if out.RetryBase <= 0 {
		out.RetryBase = 500 * time.Millisecond
	}

	jsonRaw, err := loadTargetsConfigJSON(cfg)
	if err != nil {
		return Config{}, err
	}
	if jsonRaw == "" {
		return out, nil
	}
	targets, err := parseTargetsJSON(jsonRaw)
	if err != nil {
		return Config{}, err
	}
	out.Targets = targets
	return out, nil
}

func loadTargetsConfigJSON(cfg config.ServerConfig) (string, error) {
	path := strings.TrimSpace(cfg.ResultPushConfigPath)
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read result push config path %q: %w", path, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return strings.TrimSpace(cfg.ResultPushConfigJSON), nil
}

func parseTargetsJSON(jsonRaw string) ([]PushTarget, error) {
	var targets []PushTarget
	if err := json.Unmarshal([]byte(jsonRaw), &targets); err != nil {
		return nil, fmt.Errorf("parse result push targets: %w", err)
	}
	filtered := make([]PushTarget, 0, len(targets))
	for _, target := range targets {
		target.Platform = strings.ToLower(strings.TrimSpace(target.Platform))
		target.ScopeType = strings.ToLower(strings.TrimSpace(target.ScopeType))
		if target.ScopeType == "" {
			target.ScopeType = "all"
		}
		if target.ScopeType != "all" && target.ScopeType != "game" && target.ScopeType != "player" {
			continue
		}
		target.Endpoint = strings.TrimSpace(target.Endpoint)
		if target.Endpoint == "" {
			continue
		}
		if !target.Enabled {
			continue
		}
		for i := range target.OutcomeAllowlist {
			target.OutcomeAllowlist[i] = strings.TrimSpace(strings.ToLower(target.OutcomeAllowlist[i]))
		}
		filtered = append(filtered, target)
	}
	return filtered, nil
}
