package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vashkar/lightdrift/vmath"
)

func TestParamsSnapshotIndependence(t *testing.T) {
	s := Default()
	require.GreaterOrEqual(t, len(s.Objects), 2)

	a, b := s.Objects[0], s.Objects[1]
	a.RefreshParams(s.Observer, s.Light)
	b.RefreshParams(s.Observer, s.Light)

	// Model matrices differ per object; mutating one snapshot must not
	// reach the other
	assert.NotEqual(t, a.Params.Model, b.Params.Model)
	saved := b.Params.Beta
	a.Params.Beta = 0.77
	assert.Equal(t, saved, b.Params.Beta)
}

func TestRefreshParamsMatchesObserver(t *testing.T) {
	s := Default()
	s.Observer.SetBeta(0.42)
	s.Observer.Look(0.3, -0.1)
	s.Observer.Position = vmath.Vec3{X: 1, Y: 2, Z: 3}

	o := s.Objects[0]
	o.RefreshParams(s.Observer, s.Light)

	assert.Equal(t, 0.42, o.Params.Beta)
	assert.Equal(t, s.Observer.Position, o.Params.ObserverPos)
	assert.Equal(t, s.Observer.Forward(), o.Params.MotionDir)
	assert.Equal(t, o.Color, o.Params.ObjectColor)
	assert.Equal(t, s.Light.Pos, o.Params.LightPos)
}

func TestLoadSceneFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[observer]
position = [0.0, 2.0, 10.0]
beta = 0.5

[light]
position = [1.0, 8.0, 0.0]
color = [1.0, 0.9, 0.8]

[[objects]]
name = "tower"
center = [0.0, 3.0, -12.0]
size = [2.0, 6.0, 2.0]
color = [0.6, 0.2, 0.2]
subdivide = 1

[[objects]]
center = [4.0, 1.0, -6.0]
size = [2.0, 2.0, 2.0]
yaw = 0.7
`
	path := filepath.Join(dir, "hall.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, vmath.Vec3{X: 0, Y: 2, Z: 10}, s.Observer.Position)
	assert.Equal(t, 0.5, s.Observer.Beta())
	assert.Equal(t, vmath.Vec3{X: 1, Y: 8, Z: 0}, s.Light.Pos)
	require.Len(t, s.Objects, 2)

	tower := s.Objects[0]
	assert.Equal(t, "tower", tower.Name)
	assert.Equal(t, vmath.Vec3{X: 0, Y: 3, Z: -12}, tower.Pos)
	assert.Equal(t, 12*4, len(tower.Mesh.Tris))

	second := s.Objects[1]
	assert.Equal(t, "object1", second.Name)
	assert.Equal(t, 0.7, second.Yaw)
	// Color falls back when omitted
	assert.Equal(t, vmath.Vec3{X: 0.8, Y: 0.8, Z: 0.8}, second.Color)
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadSceneRejectsBadSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[objects]]
size = [0.0, 1.0, 1.0]
`), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
