package handlers

import (
	"github.com/linskybing/exam-hub/internal/application"
)

type Handlers struct {
	Hub   *HubHandler
	Spawn *SpawnHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Hub:   NewHubHandler(svc.Hub),
		Spawn: NewSpawnHandler(svc.Spawn),
	}
}
