package push

import "time"

// PushTarget is one configured webhook destination. Scope selects which
// resolved games it receives: every game ("all"), one game ("game"), or one
// player's games ("player").
type PushTarget struct {
	Platform         string   `json:"platform"`
	Endpoint         string   `json:"endpoint"`
	Secret           string   `json:"secret"`
	ScopeType        string   `json:"scope_type"`
	ScopeValue       string   `json:"scope_value"`
	OutcomeAllowlist []string `json:"outcome_allowlist"`
	Enabled          bool     `json:"enabled"`
}

type Config struct {
	Enabled             bool
	ConfigPath          string
	ConfigReload        time.Duration
	Targets             []PushTarget
	Workers             int
	RetryMax            int
	RetryBase           time.Duration
	FailureThreshold    int
	CircuitOpenDuration time.Duration
	RequestTimeout      time.Duration
	DispatchBuffer      int
}

type MessageField struct {
	Name   string
	Value  string
	Inline bool
}

type FormattedMessage struct {
	Title       string
	Content     string
	Description string
	Color       int
	Timestamp   string
	Footer      string
	Fields      []MessageField
}

type pushJob struct {
	Target    PushTarget
	Formatted FormattedMessage
	Attempt   int
}

func (j pushJob) key() string {
	return targetKey(j.Target)
}

func targetKey(t PushTarget) string {
	return t.Platform + "|" + t.Endpoint + "|" + t.ScopeType + "|" + t.ScopeValue
}
