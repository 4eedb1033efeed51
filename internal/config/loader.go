package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linskybing/exam-hub/internal/domain/exam"
	"github.com/linskybing/exam-hub/pkg/k8s"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const defaultNbGraderConfigFile = "/etc/jupyter/nbgrader_config.py"

// Loader reads the hub configuration file and every active course file it references.
type Loader struct {
	log *zap.SugaredLogger
}

func NewLoader(log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{log: log}
}

// Load parses the hub config at path. Every failure is returned as *exam.ConfigurationError.
func (l *Loader) Load(path string) (*exam.ServerConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &exam.ConfigurationError{File: path, Err: err}
	}
	var raw serverYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, &exam.ConfigurationError{File: path, Err: err}
	}

	cfg, err := l.build(filepath.Dir(path), &raw)
	if err != nil {
		var cerr *exam.ConfigurationError
		if errors.As(err, &cerr) {
			return nil, err
		}
		return nil, &exam.ConfigurationError{File: path, Err: err}
	}
	l.log.Infow("loaded exam hub config", "file", path, "courses", len(cfg.NbGrader.Courses))
	return cfg, nil
}

func missing(key string) error {
	return fmt.Errorf("%w: %s", exam.ErrMissingKey, key)
}

func (l *Loader) build(root string, raw *serverYAML) (*exam.ServerConfig, error) {
	if raw.Image == nil {
		return nil, missing("image")
	}
	if raw.Resources == nil {
		return nil, missing("resources")
	}
	if raw.NbGrader == nil {
		return nil, missing("nbgrader")
	}
	if raw.Mounts == nil {
		return nil, missing("mounts")
	}

	image, err := validateImage("image", exam.Image(*raw.Image))
	if err != nil {
		return nil, err
	}
	resources, err := validateResources("resources", exam.Resources(*raw.Resources))
	if err != nil {
		return nil, err
	}
	volumes, err := validateMounts(raw.Mounts)
	if err != nil {
		return nil, err
	}
	nbgrader, err := l.buildNbGrader(root, raw.NbGrader)
	if err != nil {
		return nil, err
	}

	return &exam.ServerConfig{
		ConfigRoot: root,
		Image:      image,
		Resources:  resources,
		Commands:   exam.Commands(raw.Commands),
		NbGrader:   nbgrader,
		Mounts:     volumes,
	}, nil
}

func validateImage(key string, image exam.Image) (exam.Image, error) {
	if image.Name == "" {
		return image, missing(key + ".name")
	}
	if image.Tag == "" {
		return image, missing(key + ".tag")
	}
	if !image.PullPolicy.Valid() {
		return image, fmt.Errorf("%w: %s.pullPolicy %q", exam.ErrInvalidPullPolicy, key, image.PullPolicy)
	}
	return image, nil
}

func validateResources(key string, r exam.Resources) (exam.Resources, error) {
	if err := k8s.ValidateResources(r); err != nil {
		return r, fmt.Errorf("%w: %s: %v", exam.ErrInvalidResource, key, err)
	}
	return r, nil
}

func validateVolume(key string, raw *volumeYAML) (exam.Volume, error) {
	if raw == nil {
		return exam.Volume{}, missing("mounts." + key)
	}
	if raw.SubPath == nil {
		return exam.Volume{}, missing("mounts." + key + ".sub_path")
	}
	v := exam.Volume{Name: raw.Name, SubPath: *raw.SubPath}
	if err := k8s.ValidateVolumeName(v.Name); err != nil {
		return v, fmt.Errorf("%w: mounts.%s: %v", exam.ErrInvalidVolume, key, err)
	}
	if err := k8s.ValidateSubPath(v.SubPath); err != nil {
		return v, fmt.Errorf("%w: mounts.%s: %v", exam.ErrInvalidVolume, key, err)
	}
	return v, nil
}

func validateMounts(raw *mountsYAML) (exam.MountVolumes, error) {
	var out exam.MountVolumes
	var err error
	if out.Exchange, err = validateVolume("exchange", raw.Exchange); err != nil {
		return out, err
	}
	if out.Temp, err = validateVolume("temp", raw.Temp); err != nil {
		return out, err
	}
	if out.Home, err = validateVolume("home", raw.Home); err != nil {
		return out, err
	}
	if raw.Share != nil {
		share := exam.ShareVolume{BasePath: raw.Share.BasePath}
		if share.Volume, err = validateVolume("share", &raw.Share.Volume); err != nil {
			return out, err
		}
		out.Share = &share
	}
	return out, nil
}

func (l *Loader) buildNbGrader(root string, raw *nbgraderYAML) (exam.NbGrader, error) {
	if raw.ExamCourseDir == nil {
		return exam.NbGrader{}, missing("nbgrader.exam_course_dir")
	}
	nb := exam.NbGrader{
		ExamCourseDir: *raw.ExamCourseDir,
		ExchangeRoot:  raw.ExchangeRoot,
		ConfigFile:    raw.ConfigFile,
		Commands:      exam.Commands(raw.Commands),
	}
	if nb.ExchangeRoot == "" {
		nb.ExchangeRoot = exam.DefaultExchangeRoot
	}
	if nb.ConfigFile == "" {
		nb.ConfigFile = defaultNbGraderConfigFile
	}

	courseRoot := filepath.Join(root, nb.ExamCourseDir)
	for _, active := range raw.ActiveStudentCourses {
		if active.Semesters == nil {
			return nb, missing("nbgrader.active_student_courses." + active.Name + ".semesters")
		}
		for _, sem := range active.Semesters {
			course, err := l.LoadCourse(courseRoot, active.Name, sem.Semester, sem.ExamPeriod, nb.ExchangeRoot)
			if err != nil {
				return nb, err
			}
			nb.Courses = append(nb.Courses, course)
		}
	}
	return nb, nil
}

// CourseFiles returns the course config file and its companion user list.
func CourseFiles(courseRoot, name, semester, examPeriod string) (configFile, userFile string) {
	base := filepath.Join(courseRoot, name, fmt.Sprintf("%s.%s.%s", name, semester, examPeriod))
	return base + ".yaml", base + ".csv"
}

// LoadCourse reads one course file and its user list. exchangeRoot is used when the
// course file does not set one.
func (l *Loader) LoadCourse(courseRoot, name, semester, examPeriod, exchangeRoot string) (exam.Course, error) {
	if examPeriod == "" {
		examPeriod = defaultExamPeriod
	}
	for _, field := range [][2]string{{"course", name}, {"semester", semester}, {"exam_period", examPeriod}} {
		if err := k8s.ValidatePathSegment(field[1]); err != nil {
			return exam.Course{}, fmt.Errorf("%w: %s: %v", exam.ErrInvalidPathSegment, field[0], err)
		}
	}

	configFile, userFile := CourseFiles(courseRoot, name, semester, examPeriod)
	b, err := os.ReadFile(configFile)
	if err != nil {
		return exam.Course{}, &exam.ConfigurationError{File: configFile, Err: err}
	}
	var raw courseYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return exam.Course{}, &exam.ConfigurationError{File: configFile, Err: err}
	}

	exchange := exam.DefaultExchangeSettings()
	exchange.ExchangeRoot = ""
	if raw.Exchange != nil {
		exchange = exam.ExchangeSettings(*raw.Exchange)
	}
	course := exam.Course{
		Name:       name,
		SemesterID: semester,
		ExamPeriod: examPeriod,
		Exchange:   exchange,
		Commands:   exam.Commands(raw.Commands),
	}
	if course.Exchange.ExchangeRoot == "" {
		course.Exchange.ExchangeRoot = exchangeRoot
	}
	if raw.Image != nil {
		image, err := validateImage("image", exam.Image(*raw.Image))
		if err != nil {
			return course, &exam.ConfigurationError{File: configFile, Err: err}
		}
		course.Image = &image
	}
	if raw.Resources != nil {
		res, err := validateResources("resources", exam.Resources(*raw.Resources))
		if err != nil {
			return course, &exam.ConfigurationError{File: configFile, Err: err}
		}
		course.Resources = &res
	}

	members, err := LoadUserList(userFile)
	if err != nil {
		return course, &exam.ConfigurationError{File: userFile, Err: err}
	}
	if members == nil {
		l.log.Warnw("user list not found, course has no members", "course", course.CourseID(), "file", userFile)
	}
	course.Members = members
	return course, nil
}
