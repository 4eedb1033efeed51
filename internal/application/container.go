package application

import "github.com/linskybing/exam-hub/internal/domain/exam"

//go:generate mockgen -destination=mock/mock_catalog.go -package=mock github.com/linskybing/exam-hub/internal/application CourseCatalog

// CourseCatalog hands out the current configuration snapshot. *config.State implements it.
type CourseCatalog interface {
	Current() *exam.ServerConfig
}

type Services struct {
	Hub   *HubService
	Spawn *SpawnService
}

func New(catalog CourseCatalog) *Services {
	return &Services{
		Hub:   NewHubService(catalog),
		Spawn: NewSpawnService(catalog),
	}
}
