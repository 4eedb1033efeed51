package mounts

import (
	"path"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

// StepDirectoryName is "personalized-<step>" for personalized steps and "<step>" otherwise.
func StepDirectoryName(step exam.Step, personalized bool) string {
	if personalized {
		return "personalized-" + string(step)
	}
	return string(step)
}

// ExchangeSubPath is the source path of an exchange step inside the exchange volume:
// <volume sub path>/<course>/<course id>/<step dir>[/<username>].
func ExchangeSubPath(volume exam.Volume, course exam.Course, username string, step exam.Step, personalized bool) string {
	p := path.Join(volume.SubPath, course.Name, course.CourseID(), StepDirectoryName(step, personalized))
	if personalized {
		p = path.Join(p, username)
	}
	return p
}

// ExchangeMountPath is where an exchange step appears in the container:
// <exchange root>/<course id>/<step dir>[/<username>].
func ExchangeMountPath(exchangeRoot string, course exam.Course, username string, step exam.Step, personalized bool) string {
	p := path.Join(exchangeRoot, course.CourseID(), StepDirectoryName(step, personalized))
	if personalized {
		p = path.Join(p, username)
	}
	return p
}

// examUserDir is the per-user exam directory shared by the temp and home rules.
func examUserDir(volume exam.Volume, course exam.Course, username string) string {
	return path.Join(
		volume.SubPath,
		"exam",
		course.SemesterID+"-"+course.ExamPeriod,
		course.Name+"-"+username,
	)
}
