package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linskybing/exam-hub/internal/application/mounts"
	"github.com/linskybing/exam-hub/internal/domain/exam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hubYAML = `
image:
  name: jupyter/base
  tag: "2024"
resources:
  cpu_limit: 4
commands:
  setup:
    - echo setup
  extra:
    - echo extra-1
    - echo extra-2
nbgrader:
  exam_course_dir: courses
  exchange_root: /srv/exchange
  commands:
    nbgrader:
      - echo nbgrader
  active_student_courses:
    stats:
      semesters:
        - semester: 2024W
          exam_period: PZ2
    algo:
      semesters:
        - semester: 2024W
          exam_period: PZ1
        - semester: 2025S
          exam_period: PZ1
mounts:
  exchange:
    name: disk3
    sub_path: nbgrader/exchanges
  share:
    name: disk3
    sub_path: shares/exam
  temp:
    name: disk2
    sub_path: homes
  home:
    name: disk2
    sub_path: homes
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeHub lays out a hub config directory and returns the hub config path.
func writeHub(t *testing.T, hub string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "courses/stats/stats.2024W.PZ2.yaml"), `
exchange:
  personalized_outbound: true
  exchange_root: /custom/exchange
image:
  name: jupyter/stats
  tag: v2
  pullPolicy: Always
resources:
  mem_limit: 4G
commands:
  stats:
    - echo stats
`)
	writeFile(t, filepath.Join(dir, "courses/stats/stats.2024W.PZ2.csv"), "Username,Name\nalice,Alice\nbob,Bob\n")
	writeFile(t, filepath.Join(dir, "courses/algo/algo.2024W.PZ1.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, "courses/algo/algo.2024W.PZ1.csv"), "Username\nalice\ncarol\n")
	writeFile(t, filepath.Join(dir, "courses/algo/algo.2025S.PZ1.yaml"), "exchange:\n  personalized_feedback: false\n")
	path := filepath.Join(dir, "config-exam.yaml")
	writeFile(t, path, hub)
	return path
}

func TestLoad(t *testing.T) {
	path := writeHub(t, hubYAML)

	cfg, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.ConfigRoot)
	assert.Equal(t, exam.Image{Name: "jupyter/base", Tag: "2024", PullPolicy: exam.PullIfNotPresent}, cfg.Image)
	assert.Equal(t, exam.Resources{CPUGuarantee: 0.001, CPULimit: 4, MemGuarantee: "1.0G", MemLimit: "2.0G"}, cfg.Resources)
	assert.Equal(t, []string{"echo setup", "echo extra-1", "echo extra-2"}, cfg.Commands.All())
	assert.Equal(t, "setup", cfg.Commands[0].Name)

	assert.Equal(t, "/srv/exchange", cfg.NbGrader.ExchangeRoot)
	assert.Equal(t, "/etc/jupyter/nbgrader_config.py", cfg.NbGrader.ConfigFile)
	assert.Equal(t, []string{"echo nbgrader"}, cfg.NbGrader.Commands.All())

	require.NotNil(t, cfg.Mounts.Share)
	assert.Equal(t, exam.Volume{Name: "disk3", SubPath: "shares/exam"}, cfg.Mounts.Share.Volume)
	assert.Equal(t, exam.Volume{Name: "disk2", SubPath: "homes"}, cfg.Mounts.Home)

	require.Len(t, cfg.NbGrader.Courses, 3)
	ids := []string{}
	for _, c := range cfg.NbGrader.Courses {
		ids = append(ids, c.CourseID())
	}
	assert.Equal(t, []string{"stats-2024W", "algo-2024W", "algo-2025S"}, ids)
}

func TestLoadCourseSettings(t *testing.T) {
	cfg, err := NewLoader(nil).Load(writeHub(t, hubYAML))
	require.NoError(t, err)
	stats, algo, algoNext := cfg.NbGrader.Courses[0], cfg.NbGrader.Courses[1], cfg.NbGrader.Courses[2]

	assert.Equal(t, "PZ2", stats.ExamPeriod)
	assert.Equal(t, []string{"alice", "bob"}, stats.Members)
	assert.Equal(t, exam.ExchangeSettings{
		PersonalizedFeedback: true,
		PersonalizedInbound:  true,
		PersonalizedOutbound: true,
		ExchangeRoot:         "/custom/exchange",
	}, stats.Exchange)
	require.NotNil(t, stats.Image)
	assert.Equal(t, "jupyter/stats:v2", stats.Image.FullName())
	assert.Equal(t, exam.PullAlways, stats.Image.PullPolicy)
	require.NotNil(t, stats.Resources)
	assert.Equal(t, "4G", stats.Resources.MemLimit)
	assert.Equal(t, "1.0G", stats.Resources.MemGuarantee)
	assert.Equal(t, []string{"echo stats"}, stats.Commands.All())

	assert.Nil(t, algo.Image)
	assert.Nil(t, algo.Resources)
	assert.Equal(t, []string{"alice", "carol"}, algo.Members)
	assert.Equal(t, "/srv/exchange", algo.Exchange.ExchangeRoot)
	assert.True(t, algo.Exchange.PersonalizedFeedback)

	assert.False(t, algoNext.Exchange.PersonalizedFeedback)
	assert.True(t, algoNext.Exchange.PersonalizedInbound)
	assert.Nil(t, algoNext.Members, "missing user list yields no members")
}

func TestLoadErrors(t *testing.T) {
	const volumes = "mounts: {exchange: {name: a, sub_path: x}, temp: {name: a, sub_path: x}, home: {name: a, sub_path: x}}\n"
	tests := []struct {
		name    string
		hub     string
		wantErr error
	}{
		{"missing image", "resources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {}\n", exam.ErrMissingKey},
		{"missing exam course dir", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {}\n" + volumes, exam.ErrMissingKey},
		{"missing home volume", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {exchange: {name: a, sub_path: x}, temp: {name: a, sub_path: x}}\n", exam.ErrMissingKey},
		{"missing sub path", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {exchange: {name: disk3}, temp: {name: a, sub_path: x}, home: {name: a, sub_path: x}}\n", exam.ErrMissingKey},
		{"missing share sub path", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {exchange: {name: a, sub_path: x}, share: {name: a}, temp: {name: a, sub_path: x}, home: {name: a, sub_path: x}}\n", exam.ErrMissingKey},
		{"missing semesters", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {exam_course_dir: c, active_student_courses: {algo: {}}}\n" + volumes, exam.ErrMissingKey},
		{"bad pull policy", "image: {name: a, tag: b, pullPolicy: Sometimes}\nresources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {}\n", exam.ErrInvalidPullPolicy},
		{"bad resources", "image: {name: a, tag: b}\nresources: {mem_limit: 1M}\nnbgrader: {exam_course_dir: c}\nmounts: {}\n", exam.ErrInvalidResource},
		{"absolute sub path", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {exchange: {name: a, sub_path: /x}, temp: {name: a, sub_path: x}, home: {name: a, sub_path: x}}\n", exam.ErrInvalidVolume},
		{"bad volume name", "image: {name: a, tag: b}\nresources: {}\nnbgrader: {exam_course_dir: c}\nmounts: {exchange: {name: Disk_3, sub_path: x}, temp: {name: a, sub_path: x}, home: {name: a, sub_path: x}}\n", exam.ErrInvalidVolume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config-exam.yaml")
			writeFile(t, path, tt.hub)

			_, err := NewLoader(nil).Load(path)

			var cerr *exam.ConfigurationError
			require.True(t, errors.As(err, &cerr), "got %v", err)
			assert.Equal(t, path, cerr.File)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingCourseFile(t *testing.T) {
	path := writeHub(t, hubYAML)
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(path), "courses/algo/algo.2024W.PZ1.yaml")))

	_, err := NewLoader(nil).Load(path)

	var cerr *exam.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.File, "algo.2024W.PZ1.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsSeparatorInSemester(t *testing.T) {
	_, err := NewLoader(nil).LoadCourse(t.TempDir(), "algo", "2024/W", "PZ1", "/x")
	assert.ErrorIs(t, err, exam.ErrInvalidPathSegment)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var cerr *exam.ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestLoadCourseDefaultsExamPeriod(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "algo/algo.2024W.PZ1.yaml"), "")

	course, err := NewLoader(nil).LoadCourse(root, "algo", "2024W", "", "/srv/x")
	require.NoError(t, err)
	assert.Equal(t, "PZ1", course.ExamPeriod)
	assert.Equal(t, "/srv/x", course.Exchange.ExchangeRoot)
	assert.Equal(t, exam.DefaultExchangeSettings().PersonalizedInbound, course.Exchange.PersonalizedInbound)
}

func TestLoadedCourseMountsUseHubExchangeRoot(t *testing.T) {
	cfg, err := NewLoader(nil).Load(writeHub(t, hubYAML))
	require.NoError(t, err)

	algo := cfg.NbGrader.Courses[1]
	require.Equal(t, "algo-2024W", algo.CourseID())

	var exchange []string
	for _, m := range mounts.NewAssembler(cfg.Mounts).Assemble(algo, "alice") {
		if strings.HasPrefix(m.SubPath, "nbgrader/exchanges/") {
			exchange = append(exchange, m.MountPath)
		}
	}
	assert.Equal(t, []string{
		"/srv/exchange/algo-2024W/personalized-feedback/alice",
		"/srv/exchange/algo-2024W/personalized-inbound/alice",
		"/srv/exchange/algo-2024W/outbound",
	}, exchange)
}
