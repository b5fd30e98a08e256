package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Viewer holds every knob of the render harness. Defaults reproduce the
// original teapot scene; a yaml file can override individual fields.
type Viewer struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	ClearColor [3]float32 `yaml:"clear_color"`
	Camera     struct {
		Position  [3]float32 `yaml:"position"`
		Direction [3]float32 `yaml:"direction"`
		Up        [3]float32 `yaml:"up"`
	} `yaml:"camera"`
	Projection struct {
		FovDegrees float32 `yaml:"fov_degrees"`
		ZNear      float32 `yaml:"znear"`
		ZFar       float32 `yaml:"zfar"`
	} `yaml:"projection"`
	Light [3]float32 `yaml:"light"`
	Model struct {
		Scale     float32    `yaml:"scale"`
		Translate [3]float32 `yaml:"translate"`
	} `yaml:"model"`
}

var currentViewer = DefaultViewer()

func DefaultViewer() Viewer {
	var v Viewer
	v.Window.Width = 800
	v.Window.Height = 600
	v.Window.Title = "Teapot"
	v.ClearColor = [3]float32{0.12, 0.12, 0.12}
	v.Camera.Position = [3]float32{2, -1, 1}
	v.Camera.Direction = [3]float32{-2, 1, 1}
	v.Camera.Up = [3]float32{0, 1, 0}
	v.Projection.FovDegrees = 60
	v.Projection.ZNear = 0.1
	v.Projection.ZFar = 1024
	v.Light = [3]float32{-1, 0.4, 0.9}
	v.Model.Scale = 0.1
	v.Model.Translate = [3]float32{0, 0, 2}
	return v
}

func GetViewer() Viewer { return currentViewer }

func SetViewer(v Viewer) { currentViewer = v }

// LoadViewer overlays settings from a yaml file on top of the defaults.
func LoadViewer(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to read config %q", path)
	}
	v := DefaultViewer()
	if err := yaml.Unmarshal(data, &v); err != nil {
		return errors.Wrapf(err, "Failed to parse config %q", path)
	}
	currentViewer = v
	return nil
}
