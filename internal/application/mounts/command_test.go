package mounts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

func TestBuildExchangeCommands(t *testing.T) {
	settings := exam.ExchangeSettings{
		PersonalizedFeedback: true,
		PersonalizedInbound:  true,
		PersonalizedOutbound: false,
	}

	got := BuildExchangeCommands(settings, "/etc/jupyter/nbgrader_config.py")

	assert.Equal(t, []string{
		"echo 'c.Exchange.personalized_feedback = True' >> /etc/jupyter/nbgrader_config.py",
		"echo 'c.Exchange.personalized_inbound = True' >> /etc/jupyter/nbgrader_config.py",
		"echo 'c.Exchange.personalized_outbound = False' >> /etc/jupyter/nbgrader_config.py",
	}, got)
}

func TestPersonalizedUnknownStepPanics(t *testing.T) {
	assert.Panics(t, func() {
		exam.DefaultExchangeSettings().Personalized(exam.Step("release"))
	})
}
