package k8s

import (
	"fmt"
	"strconv"

	"github.com/linskybing/exam-hub/internal/domain/exam"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

func parseResourceQuantity(field, value string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(value)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return q, nil
}

// ValidateResources checks that CPU values are positive, memory values parse as quantities,
// and no guarantee exceeds its limit.
func ValidateResources(r exam.Resources) error {
	if r.CPUGuarantee <= 0 {
		return fmt.Errorf("cpu_guarantee must be positive, got %v", r.CPUGuarantee)
	}
	if r.CPULimit <= 0 {
		return fmt.Errorf("cpu_limit must be positive, got %v", r.CPULimit)
	}
	if r.CPULimit < r.CPUGuarantee {
		return fmt.Errorf("cpu limit (%v) cannot be less than guarantee (%v)", r.CPULimit, r.CPUGuarantee)
	}

	memReq, err := parseResourceQuantity("mem_guarantee", r.MemGuarantee)
	if err != nil {
		return err
	}
	memLim, err := parseResourceQuantity("mem_limit", r.MemLimit)
	if err != nil {
		return err
	}
	if memLim.Cmp(memReq) < 0 {
		return fmt.Errorf("memory limit (%s) cannot be less than guarantee (%s)", r.MemLimit, r.MemGuarantee)
	}
	return nil
}

func cpuQuantity(cores float64) resource.Quantity {
	return resource.MustParse(strconv.FormatFloat(cores, 'f', -1, 64))
}

// ResourceRequirements maps guarantees to requests and limits to limits.
// Resources must have passed ValidateResources.
func ResourceRequirements(r exam.Resources) corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    cpuQuantity(r.CPUGuarantee),
			corev1.ResourceMemory: resource.MustParse(r.MemGuarantee),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    cpuQuantity(r.CPULimit),
			corev1.ResourceMemory: resource.MustParse(r.MemLimit),
		},
	}
}
