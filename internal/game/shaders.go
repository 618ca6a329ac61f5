package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Blit vertex shader: a clip-space quad carrying its own texture coordinates.
const blitVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;

out vec2 vUV;

void main() {
    vUV = aUV;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const blitFragSrc = `#version 410 core

uniform sampler2D uFrame;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = vec4(texture(uFrame, vUV).rgb, 1.0);
}
` + "\x00"

// compileShader compiles one stage. On failure the shader is deleted and the
// driver's info log is returned in the error.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", stageName(shaderType), msg)
	}
	return shader, nil
}

// linkProgram builds a program from vertex and fragment sources. The stage
// objects are released whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	var stages []uint32
	defer func() {
		for _, sh := range stages {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range []struct {
		src string
		typ uint32
	}{{vertSrc, gl.VERTEX_SHADER}, {fragSrc, gl.FRAGMENT_SHADER}} {
		sh, err := compileShader(st.src, st.typ)
		if err != nil {
			return 0, err
		}
		stages = append(stages, sh)
	}

	program := gl.CreateProgram()
	for _, sh := range stages {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)
	for _, sh := range stages {
		gl.DetachShader(program, sh)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}

// infoLog reads a shader or program log through the matching getters.
func infoLog(
	obj uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := strings.Repeat("\x00", int(n+1))
	getLog(obj, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}
