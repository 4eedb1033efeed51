package exam

import "fmt"

// Step is one direction of the nbgrader exchange.
type Step string

const (
	StepFeedback Step = "feedback"
	StepInbound  Step = "inbound"
	StepOutbound Step = "outbound"
)

// Steps lists the exchange steps in the order mounts and commands are emitted.
var Steps = []Step{StepFeedback, StepInbound, StepOutbound}

// DefaultExchangeRoot is where nbgrader expects the exchange inside the container.
const DefaultExchangeRoot = "/srv/nbgrader/exchange"

type ExchangeSettings struct {
	PersonalizedFeedback bool   `json:"personalized_feedback" yaml:"personalized_feedback"`
	PersonalizedInbound  bool   `json:"personalized_inbound" yaml:"personalized_inbound"`
	PersonalizedOutbound bool   `json:"personalized_outbound" yaml:"personalized_outbound"`
	ExchangeRoot         string `json:"exchange_root" yaml:"exchange_root"`
}

// DefaultExchangeSettings personalizes feedback and inbound but not outbound.
func DefaultExchangeSettings() ExchangeSettings {
	return ExchangeSettings{
		PersonalizedFeedback: true,
		PersonalizedInbound:  true,
		PersonalizedOutbound: false,
		ExchangeRoot:         DefaultExchangeRoot,
	}
}

// Personalized reports whether step is scoped to a single user.
// Steps outside the fixed set are a programming error.
func (s ExchangeSettings) Personalized(step Step) bool {
	switch step {
	case StepFeedback:
		return s.PersonalizedFeedback
	case StepInbound:
		return s.PersonalizedInbound
	case StepOutbound:
		return s.PersonalizedOutbound
	}
	panic(fmt.Sprintf("exam: unknown exchange step %q", string(step)))
}

// Writable reports whether students may write to step. Only inbound is writable.
func (step Step) Writable() bool {
	return step == StepInbound
}
