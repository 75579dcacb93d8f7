package scene

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vashkar/lightdrift/relativity"
	"github.com/vashkar/lightdrift/vmath"
)

// sceneSpec mirrors the TOML scene file layout
type sceneSpec struct {
	Observer struct {
		Position []float64 `mapstructure:"position"`
		Beta     float64   `mapstructure:"beta"`
	} `mapstructure:"observer"`
	Light struct {
		Position []float64 `mapstructure:"position"`
		Color    []float64 `mapstructure:"color"`
	} `mapstructure:"light"`
	Objects []objectSpec `mapstructure:"objects"`
}

type objectSpec struct {
	Name      string    `mapstructure:"name"`
	Center    []float64 `mapstructure:"center"`
	Size      []float64 `mapstructure:"size"`
	Yaw       float64   `mapstructure:"yaw"`
	Color     []float64 `mapstructure:"color"`
	Subdivide int       `mapstructure:"subdivide"`
}

func vec3From(s []float64, fallback vmath.Vec3) vmath.Vec3 {
	if len(s) != 3 {
		return fallback
	}
	return vmath.Vec3{X: s[0], Y: s[1], Z: s[2]}
}

// Load reads a TOML scene description: observer start pose and beta, the
// light, and a list of boxes. Omitted sections fall back to the built-in
// defaults; an unreadable file is an error for the caller
func Load(path string) (*Scene, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	var spec sceneSpec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	s := &Scene{
		Light: Light{
			Pos:   vec3From(spec.Light.Position, vmath.Vec3{X: 4, Y: 10, Z: -8}),
			Color: vec3From(spec.Light.Color, vmath.Vec3{X: 1, Y: 1, Z: 1}),
		},
		Observer: relativity.NewObserver(
			vec3From(spec.Observer.Position, vmath.Vec3{X: 0, Y: 1.6, Z: 6}),
			spec.Observer.Beta,
		),
	}

	for i, os := range spec.Objects {
		size := vec3From(os.Size, vmath.Vec3{X: 1, Y: 1, Z: 1})
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, fmt.Errorf("object %d: non-positive size %v", i, size)
		}
		mesh := BoxMesh(size)
		if os.Subdivide > 0 {
			mesh = mesh.Subdivide(os.Subdivide)
		}
		name := os.Name
		if name == "" {
			name = fmt.Sprintf("object%d", i)
		}
		s.Objects = append(s.Objects, &Object{
			Name:  name,
			Mesh:  mesh,
			Pos:   vec3From(os.Center, vmath.Vec3{}),
			Yaw:   os.Yaw,
			Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
			Color: vec3From(os.Color, vmath.Vec3{X: 0.8, Y: 0.8, Z: 0.8}),
		})
	}

	return s, nil
}
