package mounts

import (
	"fmt"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

// BuildExchangeCommands appends one nbgrader Exchange personalization setting per step to configPath.
// The file is Python, so booleans are rendered as True/False.
func BuildExchangeCommands(settings exam.ExchangeSettings, configPath string) []string {
	out := make([]string, 0, len(exam.Steps))
	for _, step := range exam.Steps {
		out = append(out, fmt.Sprintf(
			"echo 'c.Exchange.personalized_%s = %s' >> %s",
			step, pythonBool(settings.Personalized(step)), configPath,
		))
	}
	return out
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
