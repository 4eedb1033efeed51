package mounts

import (
	"path"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

const (
	TempMountPath    = "/tmp"
	HomeMountPath    = "/home/jovyan"
	DefaultShareBase = "/srv/shares"
)

// Rule produces the mounts one storage concern contributes to a spawn.
type Rule interface {
	Mounts(course exam.Course, username string) []exam.Mount
}

// ExchangeRule mounts the feedback, inbound and outbound exchange directories, in that order.
// Inbound is the only writable step.
type ExchangeRule struct {
	Volume exam.Volume
}

func (r ExchangeRule) Mounts(course exam.Course, username string) []exam.Mount {
	root := course.Exchange.ExchangeRoot
	if root == "" {
		root = exam.DefaultExchangeRoot
	}
	out := make([]exam.Mount, 0, len(exam.Steps))
	for _, step := range exam.Steps {
		personalized := course.Exchange.Personalized(step)
		out = append(out, exam.Mount{
			Name:      r.Volume.Name,
			ReadOnly:  !step.Writable(),
			SubPath:   ExchangeSubPath(r.Volume, course, username, step, personalized),
			MountPath: ExchangeMountPath(root, course, username, step, personalized),
		})
	}
	return out
}

// SharedRule mounts the public share and the course share, both read-only.
type SharedRule struct {
	Volume exam.ShareVolume
}

func (r SharedRule) Mounts(course exam.Course, _ string) []exam.Mount {
	base := r.Volume.BasePath
	if base == "" {
		base = DefaultShareBase
	}
	return []exam.Mount{
		{
			Name:      r.Volume.Name,
			ReadOnly:  true,
			SubPath:   path.Join(r.Volume.SubPath, "public"),
			MountPath: path.Join(base, "public"),
		},
		{
			Name:      r.Volume.Name,
			ReadOnly:  true,
			SubPath:   path.Join(r.Volume.SubPath, "courses", course.Name),
			MountPath: path.Join(base, course.Name),
		},
	}
}

// TempRule backs /tmp with a per-user directory so scratch files survive a restart.
type TempRule struct {
	Volume exam.Volume
}

func (r TempRule) Mounts(course exam.Course, username string) []exam.Mount {
	return []exam.Mount{{
		Name:      r.Volume.Name,
		ReadOnly:  false,
		SubPath:   path.Join(examUserDir(r.Volume, course, username), ".tmp"),
		MountPath: TempMountPath,
	}}
}

// HomeRule mounts the per-user exam home directory at the notebook user's home.
type HomeRule struct {
	Volume exam.Volume
}

func (r HomeRule) Mounts(course exam.Course, username string) []exam.Mount {
	return []exam.Mount{{
		Name:      r.Volume.Name,
		ReadOnly:  false,
		SubPath:   path.Join(examUserDir(r.Volume, course, username), "home"),
		MountPath: HomeMountPath,
	}}
}
