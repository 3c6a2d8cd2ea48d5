package push

import (
	"strings"

	"crew-casino/internal/app/casino"
)

type Router struct{}

func (r Router) MatchTargets(targets []PushTarget, ev casino.ResultEvent) []PushTarget {
	if len(targets) == 0 {
		return nil
	}
	out := make([]PushTarget, 0, len(targets))
	for _, target := range targets {
		if !target.Enabled {
			continue
		}
		if !scopeMatches(target, ev) {
			continue
		}
		if !outcomeAllowed(target.OutcomeAllowlist, string(ev.Outcome)) {
			continue
		}
		out = append(out, target)
	}
	return out
}

func scopeMatches(target PushTarget, ev casino.ResultEvent) bool {
	switch target.ScopeType {
	case "all":
		return true
	case "game":
		return target.ScopeValue != "" && target.ScopeValue == ev.Game
	case "player":
		return target.ScopeValue != "" && target.ScopeValue == ev.PlayerID
	default:
		return false
	}
}

func outcomeAllowed(allowlist []string, outcome string) bool {
	if len(allowlist) == 0 {
		return true
	}
	outcome = strings.ToLower(strings.TrimSpace(outcome))
	for _, v := range allowlist {
		if v == "" {
			continue
		}
		if strings.ToLower(strings.TrimSpace(v)) == outcome {
			return true
		}
	}
	return false
}
