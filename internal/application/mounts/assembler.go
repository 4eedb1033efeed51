package mounts

import "github.com/linskybing/exam-hub/internal/domain/exam"

// Assembler runs a fixed list of rules and concatenates their output.
type Assembler struct {
	rules []Rule
}

// NewAssembler orders the rules temp, shared (only when a share volume is set), home, exchange.
func NewAssembler(volumes exam.MountVolumes) *Assembler {
	rules := []Rule{TempRule{Volume: volumes.Temp}}
	if volumes.Share != nil {
		rules = append(rules, SharedRule{Volume: *volumes.Share})
	}
	rules = append(rules,
		HomeRule{Volume: volumes.Home},
		ExchangeRule{Volume: volumes.Exchange},
	)
	return &Assembler{rules: rules}
}

// Assemble returns every mount for username in course. The result is not deduplicated;
// membership of username in course is not checked here.
func (a *Assembler) Assemble(course exam.Course, username string) []exam.Mount {
	var out []exam.Mount
	for _, rule := range a.rules {
		out = append(out, rule.Mounts(course, username)...)
	}
	return out
}

// Dedupe keeps the first mount for every mount path and drops later ones, preserving order.
func Dedupe(mounts []exam.Mount) []exam.Mount {
	seen := make(map[string]struct{}, len(mounts))
	out := make([]exam.Mount, 0, len(mounts))
	for _, m := range mounts {
		if _, ok := seen[m.MountPath]; ok {
			continue
		}
		seen[m.MountPath] = struct{}{}
		out = append(out, m)
	}
	return out
}
