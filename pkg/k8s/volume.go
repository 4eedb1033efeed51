package k8s

import (
	"strings"

	"github.com/linskybing/exam-hub/internal/domain/exam"
	corev1 "k8s.io/api/core/v1"
)

// NotebookContainerName is the name KubeSpawner gives the single-user container.
const NotebookContainerName = "notebook"

// VolumeMounts converts mount descriptors into Kubernetes volume mounts, keeping order.
func VolumeMounts(mounts []exam.Mount) []corev1.VolumeMount {
	out := make([]corev1.VolumeMount, 0, len(mounts))
	for _, m := range mounts {
		out = append(out, corev1.VolumeMount{
			Name:      m.Name,
			ReadOnly:  m.ReadOnly,
			SubPath:   m.SubPath,
			MountPath: m.MountPath,
		})
	}
	return out
}

// ContainerPatch builds the notebook container fields a spawn overrides. Commands run
// as a single postStart hook and stop at the first failure.
func ContainerPatch(image exam.Image, resources exam.Resources, mounts []exam.Mount, commands []string) corev1.Container {
	c := corev1.Container{
		Name:            NotebookContainerName,
		Image:           image.FullName(),
		ImagePullPolicy: corev1.PullPolicy(image.PullPolicy),
		Resources:       ResourceRequirements(resources),
		VolumeMounts:    VolumeMounts(mounts),
	}
	if len(commands) > 0 {
		c.Lifecycle = &corev1.Lifecycle{
			PostStart: &corev1.LifecycleHandler{
				Exec: &corev1.ExecAction{
					Command: []string{"/bin/sh", "-c", strings.Join(commands, " && ")},
				},
			},
		}
	}
	return c
}
