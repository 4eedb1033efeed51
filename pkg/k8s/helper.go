package k8s

import (
	"fmt"
	"path"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// ValidateVolumeName checks that name can be used as a pod volume name (a DNS-1123 label).
func ValidateVolumeName(name string) error {
	if name == "" {
		return fmt.Errorf("volume name is empty")
	}
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("volume name %q: %s", name, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateSubPath rejects sub paths Kubernetes refuses in a volumeMount: absolute paths
// and paths that climb out of the volume.
func ValidateSubPath(subPath string) error {
	if subPath == "" {
		return nil
	}
	if strings.HasPrefix(subPath, "/") {
		return fmt.Errorf("subPath must not start with '/': %s", subPath)
	}
	for _, part := range strings.Split(path.Clean(subPath), "/") {
		if part == ".." {
			return fmt.Errorf("subPath must not contain '..': %s", subPath)
		}
	}
	return nil
}

// ValidatePathSegment checks that s can be used as a single directory name.
func ValidatePathSegment(s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%q is not a valid path segment", s)
	}
	return nil
}
