package testutils

import "github.com/linskybing/exam-hub/internal/domain/exam"

// ExamConfig is a small hub config with two courses: algo-2024W (alice, bob) and
// stats-2024W (bob, carol).
func ExamConfig() *exam.ServerConfig {
	return &exam.ServerConfig{
		Image:     exam.Image{Name: "jupyter/base", Tag: "2024", PullPolicy: exam.PullIfNotPresent},
		Resources: exam.Resources{CPUGuarantee: 0.5, CPULimit: 2, MemGuarantee: "1.0G", MemLimit: "2.0G"},
		NbGrader: exam.NbGrader{
			ExchangeRoot: exam.DefaultExchangeRoot,
			ConfigFile:   "/etc/jupyter/nbgrader_config.py",
			Courses: []exam.Course{
				{Name: "algo", SemesterID: "2024W", ExamPeriod: "PZ1", Members: []string{"alice", "bob"}, Exchange: exam.DefaultExchangeSettings()},
				{Name: "stats", SemesterID: "2024W", ExamPeriod: "PZ2", Members: []string{"bob", "carol"}, Exchange: exam.DefaultExchangeSettings()},
			},
		},
		Mounts: exam.MountVolumes{
			Exchange: exam.Volume{Name: "disk3", SubPath: "nbgrader/exchanges"},
			Temp:     exam.Volume{Name: "disk2", SubPath: "homes"},
			Home:     exam.Volume{Name: "disk2", SubPath: "homes"},
		},
	}
}
