package mounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linskybing/exam-hub/internal/domain/exam"
)

func testVolumes(withShare bool) exam.MountVolumes {
	v := exam.MountVolumes{
		Exchange: exam.Volume{Name: "disk3", SubPath: "nbgrader/exchanges"},
		Temp:     exam.Volume{Name: "disk2", SubPath: "homes"},
		Home:     exam.Volume{Name: "disk2", SubPath: "homes"},
	}
	if withShare {
		v.Share = &exam.ShareVolume{Volume: exam.Volume{Name: "disk3", SubPath: "shares/exam"}}
	}
	return v
}

func mountPaths(ms []exam.Mount) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.MountPath)
	}
	return out
}

func TestAssembleOrder(t *testing.T) {
	got := NewAssembler(testVolumes(true)).Assemble(testCourse(), "alice")

	assert.Equal(t, []string{
		"/tmp",
		"/srv/shares/public",
		"/srv/shares/algo",
		"/home/jovyan",
		"/srv/nbgrader/exchange/algo-2024W/personalized-feedback/alice",
		"/srv/nbgrader/exchange/algo-2024W/personalized-inbound/alice",
		"/srv/nbgrader/exchange/algo-2024W/outbound",
	}, mountPaths(got))
}

func TestAssembleWithoutShare(t *testing.T) {
	got := NewAssembler(testVolumes(false)).Assemble(testCourse(), "alice")

	require.Len(t, got, 5)
	assert.Equal(t, "/tmp", got[0].MountPath)
	assert.Equal(t, "/home/jovyan", got[1].MountPath)
}

func TestAssembleHasOneTempAndOneHome(t *testing.T) {
	assembler := NewAssembler(testVolumes(true))
	for _, user := range []string{"alice", "bob", "carol"} {
		temp, home := -1, -1
		count := map[string]int{}
		for i, m := range assembler.Assemble(testCourse(), user) {
			count[m.MountPath]++
			switch m.MountPath {
			case TempMountPath:
				temp = i
			case HomeMountPath:
				home = i
			}
		}
		assert.Equal(t, 1, count[TempMountPath])
		assert.Equal(t, 1, count[HomeMountPath])
		assert.Less(t, temp, home)
	}
}

func TestDedupeFirstWins(t *testing.T) {
	in := []exam.Mount{
		{Name: "v1", MountPath: "/a"},
		{Name: "v2", MountPath: "/a"},
		{Name: "v3", MountPath: "/b"},
	}
	assert.Equal(t, []exam.Mount{
		{Name: "v1", MountPath: "/a"},
		{Name: "v3", MountPath: "/b"},
	}, Dedupe(in))
}

func TestDedupeIdempotent(t *testing.T) {
	in := []exam.Mount{
		{Name: "a", MountPath: "/x"},
		{Name: "b", MountPath: "/y"},
		{Name: "c", MountPath: "/x", ReadOnly: true},
		{Name: "d", MountPath: "/z"},
		{Name: "e", MountPath: "/y"},
	}
	once := Dedupe(in)
	assert.Equal(t, once, Dedupe(once))
	assert.Equal(t, []string{"/x", "/y", "/z"}, mountPaths(once))
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func TestDedupeAssembledKeepsEarlierRule(t *testing.T) {
	volumes := testVolumes(true)
	volumes.Share.BasePath = "/home"
	course := testCourse()
	course.Name = "jovyan"

	raw := NewAssembler(volumes).Assemble(course, "alice")
	got := Dedupe(raw)

	require.Len(t, got, len(raw)-1)
	var home []exam.Mount
	for _, m := range got {
		if m.MountPath == HomeMountPath {
			home = append(home, m)
		}
	}
	require.Len(t, home, 1)
	assert.Equal(t, "disk3", home[0].Name)
	assert.True(t, home[0].ReadOnly)
}
