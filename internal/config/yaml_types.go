package config

import (
	"fmt"

	"github.com/linskybing/exam-hub/internal/domain/exam"
	"gopkg.in/yaml.v2"
)

const defaultExamPeriod = "PZ1"

// DefaultResources are applied to any field a resources block leaves out.
func DefaultResources() exam.Resources {
	return exam.Resources{
		CPUGuarantee: 0.001,
		CPULimit:     2.0,
		MemGuarantee: "1.0G",
		MemLimit:     "2.0G",
	}
}

type imageYAML exam.Image

func (i *imageYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*i = imageYAML{PullPolicy: exam.PullIfNotPresent}
	type plain imageYAML
	return unmarshal((*plain)(i))
}

type resourcesYAML exam.Resources

func (r *resourcesYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*r = resourcesYAML(DefaultResources())
	type plain resourcesYAML
	return unmarshal((*plain)(r))
}

type exchangeYAML exam.ExchangeSettings

func (e *exchangeYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*e = exchangeYAML(exam.DefaultExchangeSettings())
	e.ExchangeRoot = ""
	type plain exchangeYAML
	return unmarshal((*plain)(e))
}

// commandsYAML decodes a mapping of section name to command list, keeping section order.
type commandsYAML exam.Commands

func (c *commandsYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var sections yaml.MapSlice
	if err := unmarshal(&sections); err != nil {
		return err
	}
	out := make(commandsYAML, 0, len(sections))
	for _, item := range sections {
		name := fmt.Sprint(item.Key)
		section := exam.CommandSection{Name: name}
		if item.Value != nil {
			list, ok := item.Value.([]interface{})
			if !ok {
				return fmt.Errorf("commands section %q must be a list", name)
			}
			for _, cmd := range list {
				s, ok := cmd.(string)
				if !ok {
					return fmt.Errorf("commands section %q: %v is not a string", name, cmd)
				}
				section.Commands = append(section.Commands, s)
			}
		}
		out = append(out, section)
	}
	*c = out
	return nil
}

type semesterYAML struct {
	Semester   string `yaml:"semester"`
	ExamPeriod string `yaml:"exam_period"`
}

type activeCourse struct {
	Name      string
	Semesters []semesterYAML
}

// activeCoursesYAML decodes active_student_courses in declaration order.
type activeCoursesYAML []activeCourse

func (a *activeCoursesYAML) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var order yaml.MapSlice
	if err := unmarshal(&order); err != nil {
		return err
	}
	var typed map[string]struct {
		Semesters []semesterYAML `yaml:"semesters"`
	}
	if err := unmarshal(&typed); err != nil {
		return err
	}
	out := make(activeCoursesYAML, 0, len(order))
	for _, item := range order {
		name := fmt.Sprint(item.Key)
		out = append(out, activeCourse{Name: name, Semesters: typed[name].Semesters})
	}
	*a = out
	return nil
}

type nbgraderYAML struct {
	ExamCourseDir        *string           `yaml:"exam_course_dir"`
	ExchangeRoot         string            `yaml:"exchange_root"`
	ConfigFile           string            `yaml:"config_file"`
	Commands             commandsYAML      `yaml:"commands"`
	ActiveStudentCourses activeCoursesYAML `yaml:"active_student_courses"`
}

// volumeYAML keeps sub_path as a pointer so an absent key can be told apart from an empty one.
type volumeYAML struct {
	Name    string  `yaml:"name"`
	SubPath *string `yaml:"sub_path"`
}

type shareYAML struct {
	Volume   volumeYAML `yaml:",inline"`
	BasePath string     `yaml:"base_path"`
}

type mountsYAML struct {
	Exchange *volumeYAML `yaml:"exchange"`
	Share    *shareYAML  `yaml:"share"`
	Temp     *volumeYAML `yaml:"temp"`
	Home     *volumeYAML `yaml:"home"`
}

type serverYAML struct {
	Image     *imageYAML     `yaml:"image"`
	Resources *resourcesYAML `yaml:"resources"`
	Commands  commandsYAML   `yaml:"commands"`
	NbGrader  *nbgraderYAML  `yaml:"nbgrader"`
	Mounts    *mountsYAML    `yaml:"mounts"`
}

type courseYAML struct {
	Exchange  *exchangeYAML  `yaml:"exchange"`
	Image     *imageYAML     `yaml:"image"`
	Resources *resourcesYAML `yaml:"resources"`
	Commands  commandsYAML   `yaml:"commands"`
}
