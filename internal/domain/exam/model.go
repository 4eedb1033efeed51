package exam

import "fmt"

// PullPolicy mirrors the Kubernetes image pull policies accepted by KubeSpawner.
type PullPolicy string

const (
	PullAlways       PullPolicy = "Always"
	PullIfNotPresent PullPolicy = "IfNotPresent"
	PullNever        PullPolicy = "Never"
)

func (p PullPolicy) Valid() bool {
	switch p {
	case PullAlways, PullIfNotPresent, PullNever:
		return true
	}
	return false
}

// Volume is a named storage volume and the root inside it that mounts are taken from.
type Volume struct {
	Name    string `json:"name" yaml:"name"`
	SubPath string `json:"subPath" yaml:"sub_path"`
}

// ShareVolume is the optional read-only share volume. BasePath is where shares appear in the container.
type ShareVolume struct {
	Volume   `yaml:",inline"`
	BasePath string `json:"basePath" yaml:"base_path"`
}

// Mount binds a sub path of a volume to a path inside the single-user container.
// The json tags are the only serialization mapping; they follow Kubernetes VolumeMount casing.
type Mount struct {
	Name      string `json:"name"`
	ReadOnly  bool   `json:"readOnly"`
	SubPath   string `json:"subPath"`
	MountPath string `json:"mountPath"`
}

type Image struct {
	Name       string     `json:"name" yaml:"name"`
	Tag        string     `json:"tag" yaml:"tag"`
	PullPolicy PullPolicy `json:"pullPolicy" yaml:"pullPolicy"`
}

// FullName returns "name:tag".
func (i Image) FullName() string {
	return fmt.Sprintf("%s:%s", i.Name, i.Tag)
}

type Resources struct {
	CPUGuarantee float64 `json:"cpu_guarantee" yaml:"cpu_guarantee"`
	CPULimit     float64 `json:"cpu_limit" yaml:"cpu_limit"`
	MemGuarantee string  `json:"mem_guarantee" yaml:"mem_guarantee"`
	MemLimit     string  `json:"mem_limit" yaml:"mem_limit"`
}

// CommandSection is one named list of shell commands. Sections keep their declaration order.
type CommandSection struct {
	Name     string   `json:"name"`
	Commands []string `json:"commands"`
}

// Commands is an ordered set of command sections.
type Commands []CommandSection

// All flattens every section in declaration order.
func (c Commands) All() []string {
	var out []string
	for _, section := range c {
		out = append(out, section.Commands...)
	}
	return out
}

// Course is one exam offering: a course in a given semester and exam period.
type Course struct {
	Name       string           `json:"name"`
	SemesterID string           `json:"semester_id"`
	ExamPeriod string           `json:"exam_period"`
	Members    []string         `json:"course_members"`
	Exchange   ExchangeSettings `json:"exchange"`
	Image      *Image           `json:"image,omitempty"`
	Resources  *Resources       `json:"resources,omitempty"`
	Commands   Commands         `json:"commands,omitempty"`
}

// CourseID is "{name}-{semester}" and is used as a path component.
func (c Course) CourseID() string {
	return fmt.Sprintf("%s-%s", c.Name, c.SemesterID)
}

// HasMember reports whether username is listed in the course's user list.
func (c Course) HasMember(username string) bool {
	for _, m := range c.Members {
		if m == username {
			return true
		}
	}
	return false
}

// MountVolumes holds the volumes every spawn draws its mounts from. Share is optional.
type MountVolumes struct {
	Exchange Volume
	Share    *ShareVolume
	Temp     Volume
	Home     Volume
}

// NbGrader groups the exam courses and the nbgrader-side settings shared by them.
type NbGrader struct {
	ExamCourseDir string
	ExchangeRoot  string
	ConfigFile    string
	Courses       []Course
	Commands      Commands
}

// ServerConfig is the fully loaded hub configuration. It is read-only once loaded.
type ServerConfig struct {
	ConfigRoot string
	Image      Image
	Resources  Resources
	Commands   Commands
	NbGrader   NbGrader
	Mounts     MountVolumes
}
