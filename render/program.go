package render

import (
	_ "embed"
	"log"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"
)

//go:embed shaders/teapot.vert
var teapotVertexShader string

//go:embed shaders/teapot.frag
var teapotFragmentShader string

// TeapotProgram is the fixed Blinn-Phong shader pair with its uniform and
// attribute locations resolved.
type TeapotProgram struct {
	*Program

	UPerspective int32
	UView        int32
	UModel       int32
	ULight       int32

	APosition int32
	ANormal   int32
}

// NewTeapotProgram compiles and links the teapot shaders. An OpenGL
// context has to be current.
func NewTeapotProgram() (*TeapotProgram, error) {
	program, err := LoadProgram(teapotVertexShader, teapotFragmentShader)
	if err != nil {
		return nil, err
	}

	tp := &TeapotProgram{Program: program}

	tp.UPerspective = gl.GetUniformLocation(tp.Id, gl.Str("umPerspective\x00"))
	tp.UView = gl.GetUniformLocation(tp.Id, gl.Str("umView\x00"))
	tp.UModel = gl.GetUniformLocation(tp.Id, gl.Str("umModel\x00"))
	tp.ULight = gl.GetUniformLocation(tp.Id, gl.Str("uLight\x00"))

	tp.APosition = gl.GetAttribLocation(tp.Id, gl.Str("aPosition\x00"))
	tp.ANormal = gl.GetAttribLocation(tp.Id, gl.Str("aNormal\x00"))

	return tp, nil
}

type Program struct {
	Id                           uint32
	VertexShader, FragmentShader uint32
}

func (p *Program) Delete() {
	gl.DetachShader(p.Id, p.VertexShader)
	gl.DetachShader(p.Id, p.FragmentShader)
	gl.DeleteProgram(p.Id)
	gl.DeleteShader(p.VertexShader)
	gl.DeleteShader(p.FragmentShader)
}

func LoadProgram(vertexShaderText, fragmentShaderText string) (*Program, error) {
	p := &Program{}

	p.Id = gl.CreateProgram()

	if vs, err := LoadShader(gl.VERTEX_SHADER, vertexShaderText); err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	} else {
		p.VertexShader = vs
	}

	if fs, err := LoadShader(gl.FRAGMENT_SHADER, fragmentShaderText); err != nil {
		gl.DeleteShader(p.VertexShader)
		return nil, errors.Wrap(err, "fragment shader")
	} else {
		p.FragmentShader = fs
	}

	gl.AttachShader(p.Id, p.VertexShader)
	gl.AttachShader(p.Id, p.FragmentShader)
	gl.LinkProgram(p.Id)

	var isLinked int32
	gl.GetProgramiv(p.Id, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.FALSE {
		var logSize int32
		gl.GetProgramiv(p.Id, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetProgramInfoLog(p.Id, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		log.Printf("Failed to link program:\n%s", errString)

		p.Delete()
		return nil, errors.Errorf("failed to link program: %q", errString)
	} else {
		return p, nil
	}
}

func LoadShader(xtype uint32, text string) (shader uint32, err error) {
	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	shader = gl.CreateShader(xtype)
	glShaderSource(shader, text)
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logSize int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		log.Printf("Failed to compile shader:\n%s", errString)

		gl.DeleteShader(shader)
		return gl.INVALID_INDEX, errors.Errorf("failed to compile shader: %q", errString)
	} else {
		return shader, nil
	}
}
