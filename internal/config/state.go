package config

import (
	"sync/atomic"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

// State holds the current hub configuration snapshot. Readers always see a complete
// config; a reload swaps the whole snapshot.
type State struct {
	cfg atomic.Value // *exam.ServerConfig
}

func NewState(initial *exam.ServerConfig) *State {
	s := &State{}
	if initial == nil {
		initial = &exam.ServerConfig{}
	}
	s.cfg.Store(initial)
	return s
}

func (s *State) Current() *exam.ServerConfig { return s.cfg.Load().(*exam.ServerConfig) }

func (s *State) ApplyNewConfig(c *exam.ServerConfig) { s.cfg.Store(c) }
