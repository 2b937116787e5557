// Package domains holds the static registry of analysis domains. Each domain
// selects a prompt template and the identities of its three agents.
package domains

import "strings"

// Key identifies a domain.
type Key string

const (
	Game     Key = "game"
	Software Key = "software"
	Learning Key = "learning"
	Support  Key = "support"
)

// Default is used whenever a request names no domain or an unknown one.
const Default = Game

// CodeMarker is the single substitution point inside every template.
const CodeMarker = "{{CODE}}"

// Role is the fixed key of an agent inside a domain triad.
type Role string

const (
	RoleGriefer     Role = "griefer"
	RoleSpeedrunner Role = "speedrunner"
	RoleAuditor     Role = "auditor"
)

// Roles lists the agent keys in report order.
var Roles = [3]Role{RoleGriefer, RoleSpeedrunner, RoleAuditor}

// Agent is the display identity of one agent.
type Agent struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Role string `json:"role"`
}

// Agents is the fixed triad of a domain.
type Agents struct {
	Griefer     Agent `json:"griefer"`
	Speedrunner Agent `json:"speedrunner"`
	Auditor     Agent `json:"auditor"`
}

// ByRole returns the agent registered under role.
func (a Agents) ByRole(role Role) (Agent, bool) {
	switch role {
	case RoleGriefer:
		return a.Griefer, true
	case RoleSpeedrunner:
		return a.Speedrunner, true
	case RoleAuditor:
		return a.Auditor, true
	}
	return Agent{}, false
}

// List returns the triad in report order.
func (a Agents) List() [3]Agent {
	return [3]Agent{a.Griefer, a.Speedrunner, a.Auditor}
}

// Descriptor is the immutable record of a domain. Lookups return copies, so
// callers cannot alter the registry.
type Descriptor struct {
	Key      Key    `json:"-"`
	Title    string `json:"title"`
	Agents   Agents `json:"agents"`
	Template string `json:"-"`
}

var order = []Key{Game, Software, Learning, Support}

var registry = map[Key]Descriptor{
	Game: {
		Key:   Game,
		Title: "Game QA",
		Agents: Agents{
			Griefer:     Agent{Name: "The Griefer", Icon: "😈", Role: "Exploit Hunter"},
			Speedrunner: Agent{Name: "The Speedrunner", Icon: "⚡", Role: "Performance Optimizer"},
			Auditor:     Agent{Name: "The Auditor", Icon: "🔍", Role: "Code Quality Expert"},
		},
		Template: gameTemplate,
	},
	Software: {
		Key:   Software,
		Title: "Software Audit",
		Agents: Agents{
			Griefer:     Agent{Name: "Security Breacher", Icon: "🛡️", Role: "Vulnerability Scanner"},
			Speedrunner: Agent{Name: "Performance Profiler", Icon: "🚀", Role: "Bottleneck Hunter"},
			Auditor:     Agent{Name: "Code Reviewer", Icon: "📋", Role: "Maintainability Analyst"},
		},
		Template: softwareTemplate,
	},
	Learning: {
		Key:   Learning,
		Title: "Learning Mentor",
		Agents: Agents{
			Griefer:     Agent{Name: "Bug Spotter", Icon: "🐛", Role: "Mistake Finder"},
			Speedrunner: Agent{Name: "Efficiency Coach", Icon: "🏃", Role: "Optimization Tutor"},
			Auditor:     Agent{Name: "Style Teacher", Icon: "🎓", Role: "Best Practices Guide"},
		},
		Template: learningTemplate,
	},
	Support: {
		Key:   Support,
		Title: "Support Triage",
		Agents: Agents{
			Griefer:     Agent{Name: "Issue Reproducer", Icon: "🔁", Role: "Bug Reproduction"},
			Speedrunner: Agent{Name: "Quick Fixer", Icon: "🔧", Role: "Hotfix Finder"},
			Auditor:     Agent{Name: "Root Cause Analyst", Icon: "🧭", Role: "Diagnosis Expert"},
		},
		Template: supportTemplate,
	},
}

// Parse maps raw input onto a known key. Matching ignores case and
// surrounding whitespace.
func Parse(raw string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := registry[k]; ok {
		return k, true
	}
	return "", false
}

// Lookup returns the descriptor for key and whether it is registered.
func Lookup(key Key) (Descriptor, bool) {
	d, ok := registry[key]
	return d, ok
}

// Get returns the descriptor for raw, falling back to the default domain
// when raw is empty or unknown. It never fails.
func Get(raw string) Descriptor {
	if k, ok := Parse(raw); ok {
		return registry[k]
	}
	return registry[Default]
}

// Keys returns every registered key in a stable order.
func Keys() []Key {
	out := make([]Key, len(order))
	copy(out, order)
	return out
}

// All returns every descriptor in the order of Keys.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(order))
	for _, k := range order {
		out = append(out, registry[k])
	}
	return out
}
