package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/exam-hub/internal/application/mounts"
	"github.com/linskybing/exam-hub/internal/domain/exam"
	"github.com/linskybing/exam-hub/pkg/k8s"
	corev1 "k8s.io/api/core/v1"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrUserNotEnrolled = errors.New("user is not a member of any exam course")
	ErrCourseNotFound  = errors.New("course not found")
	ErrNotCourseMember = errors.New("user is not a member of the course")
)

// SpawnerOverrides are the KubeSpawner settings replaced for an exam spawn.
type SpawnerOverrides struct {
	Image           string          `json:"image"`
	ImagePullPolicy exam.PullPolicy `json:"image_pull_policy"`
	CPUGuarantee    float64         `json:"cpu_guarantee"`
	CPULimit        float64         `json:"cpu_limit"`
	MemGuarantee    string          `json:"mem_guarantee"`
	MemLimit        string          `json:"mem_limit"`
}

// SpawnPlan is everything the spawner needs to start one user's exam server.
type SpawnPlan struct {
	Username  string           `json:"username"`
	CourseID  string           `json:"course_id"`
	Mounts    []exam.Mount     `json:"mounts"`
	Overrides SpawnerOverrides `json:"overrides"`
	Commands  []string         `json:"commands"`

	image     exam.Image
	resources exam.Resources
}

type SpawnService struct {
	catalog CourseCatalog
}

func NewSpawnService(catalog CourseCatalog) *SpawnService {
	return &SpawnService{catalog: catalog}
}

// Plan builds the spawn plan for username. An empty courseID picks the user's first course.
func (s *SpawnService) Plan(username, courseID string) (*SpawnPlan, error) {
	if err := k8s.ValidatePathSegment(username); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUsername, err)
	}
	cfg := s.catalog.Current()
	course, err := resolveCourse(cfg, username, courseID)
	if err != nil {
		return nil, err
	}

	image := cfg.Image
	if course.Image != nil {
		image = *course.Image
	}
	resources := cfg.Resources
	if course.Resources != nil {
		resources = *course.Resources
	}

	plan := &SpawnPlan{
		Username:  username,
		CourseID:  course.CourseID(),
		Mounts:    mounts.Dedupe(mounts.NewAssembler(cfg.Mounts).Assemble(course, username)),
		Overrides: overrides(image, resources),
		Commands:  commands(cfg, course),
		image:     image,
		resources: resources,
	}
	return plan, nil
}

// Container renders a plan as the notebook container fields to patch.
func (s *SpawnService) Container(username, courseID string) (corev1.Container, error) {
	plan, err := s.Plan(username, courseID)
	if err != nil {
		return corev1.Container{}, err
	}
	return k8s.ContainerPatch(plan.image, plan.resources, plan.Mounts, plan.Commands), nil
}

func resolveCourse(cfg *exam.ServerConfig, username, courseID string) (exam.Course, error) {
	if courseID == "" {
		courses := coursesForUser(cfg, username)
		if len(courses) == 0 {
			return exam.Course{}, fmt.Errorf("%w: %s", ErrUserNotEnrolled, username)
		}
		return courses[0], nil
	}
	for _, c := range cfg.NbGrader.Courses {
		if c.CourseID() != courseID {
			continue
		}
		if !c.HasMember(username) {
			return exam.Course{}, fmt.Errorf("%w: %s in %s", ErrNotCourseMember, username, courseID)
		}
		return c, nil
	}
	return exam.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
}

func overrides(image exam.Image, r exam.Resources) SpawnerOverrides {
	return SpawnerOverrides{
		Image:           image.FullName(),
		ImagePullPolicy: image.PullPolicy,
		CPUGuarantee:    r.CPUGuarantee,
		CPULimit:        r.CPULimit,
		MemGuarantee:    r.MemGuarantee,
		MemLimit:        r.MemLimit,
	}
}

// commands orders the exchange directives first, then hub, nbgrader and course sections.
func commands(cfg *exam.ServerConfig, course exam.Course) []string {
	out := mounts.BuildExchangeCommands(course.Exchange, cfg.NbGrader.ConfigFile)
	out = append(out, cfg.Commands.All()...)
	out = append(out, cfg.NbGrader.Commands.All()...)
	out = append(out, course.Commands.All()...)
	return out
}
