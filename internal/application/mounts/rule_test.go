package mounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

func TestExchangeRule(t *testing.T) {
	course := testCourse()
	course.Exchange.ExchangeRoot = "/srv/ex"
	rule := ExchangeRule{Volume: exam.Volume{Name: "disk3", SubPath: "nbgrader/exchanges"}}

	got := rule.Mounts(course, "alice")

	assert.Equal(t, []exam.Mount{
		{Name: "disk3", ReadOnly: true, SubPath: "nbgrader/exchanges/algo/algo-2024W/personalized-feedback/alice", MountPath: "/srv/ex/algo-2024W/personalized-feedback/alice"},
		{Name: "disk3", ReadOnly: false, SubPath: "nbgrader/exchanges/algo/algo-2024W/personalized-inbound/alice", MountPath: "/srv/ex/algo-2024W/personalized-inbound/alice"},
		{Name: "disk3", ReadOnly: true, SubPath: "nbgrader/exchanges/algo/algo-2024W/outbound", MountPath: "/srv/ex/algo-2024W/outbound"},
	}, got)
}

func TestExchangeRuleDefaultsRoot(t *testing.T) {
	course := testCourse()
	course.Exchange.ExchangeRoot = ""

	got := ExchangeRule{Volume: exam.Volume{Name: "v", SubPath: "s"}}.Mounts(course, "alice")
	require.Len(t, got, 3)
	assert.Equal(t, "/srv/nbgrader/exchange/algo-2024W/outbound", got[2].MountPath)
}

func TestSharedRule(t *testing.T) {
	rule := SharedRule{Volume: exam.ShareVolume{Volume: exam.Volume{Name: "disk3", SubPath: "shares/exam"}}}

	for _, name := range []string{"algo", "stats"} {
		course := testCourse()
		course.Name = name
		got := rule.Mounts(course, "alice")

		require.Len(t, got, 2)
		assert.Equal(t, exam.Mount{Name: "disk3", ReadOnly: true, SubPath: "shares/exam/public", MountPath: "/srv/shares/public"}, got[0])
		assert.Equal(t, exam.Mount{Name: "disk3", ReadOnly: true, SubPath: "shares/exam/courses/" + name, MountPath: "/srv/shares/" + name}, got[1])
	}
}

func TestSharedRuleBasePath(t *testing.T) {
	rule := SharedRule{Volume: exam.ShareVolume{Volume: exam.Volume{Name: "s", SubPath: "x"}, BasePath: "/mnt/share"}}
	got := rule.Mounts(testCourse(), "alice")
	assert.Equal(t, "/mnt/share/public", got[0].MountPath)
	assert.Equal(t, "/mnt/share/algo", got[1].MountPath)
}

func TestTempAndHomeRules(t *testing.T) {
	volume := exam.Volume{Name: "disk2", SubPath: "homes"}
	course := testCourse()

	assert.Equal(t, []exam.Mount{{
		Name: "disk2", ReadOnly: false,
		SubPath:   "homes/exam/2024W-PZ1/algo-alice/.tmp",
		MountPath: "/tmp",
	}}, TempRule{Volume: volume}.Mounts(course, "alice"))

	assert.Equal(t, []exam.Mount{{
		Name: "disk2", ReadOnly: false,
		SubPath:   "homes/exam/2024W-PZ1/algo-alice/home",
		MountPath: "/home/jovyan",
	}}, HomeRule{Volume: volume}.Mounts(course, "alice"))
}
