package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Two programs: the Phong object shader and the flat lamp shader.
// Attribute locations match the geom interleaved layout
// (0=position, 1=normal, 2=texCoord).

const sceneVertexShader = `#version 430 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 texCoord;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(position, 1.0);
    fragPos = vec3(model * vec4(position, 1.0));
    fragNormal = mat3(transpose(inverse(model))) * normal;
    fragUV = texCoord;
}
` + "\x00"

const sceneFragmentShader = `#version 430 core
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 fragColor;

struct Light {
    vec3 position;
    vec3 color;
    float intensity;
};

uniform Light lights[2];
uniform vec3 viewPos;
uniform sampler2D baseTexture;

const float ambientStrength = 0.1;
const float specularStrength = 0.8;
const float shininess = 16.0;

void main() {
    vec3 norm = normalize(fragNormal);
    vec3 viewDir = normalize(viewPos - fragPos);

    vec3 phong = vec3(0.0);
    for (int i = 0; i < 2; i++) {
        vec3 lightColor = lights[i].color * lights[i].intensity;
        vec3 lightDir = normalize(lights[i].position - fragPos);
        vec3 ambient = ambientStrength * lightColor;
        float diff = max(dot(norm, lightDir), 0.0);
        vec3 reflectDir = reflect(-lightDir, norm);
        float spec = pow(max(dot(viewDir, reflectDir), 0.0), shininess);
        phong += ambient + diff * lightColor + specularStrength * spec * lightColor;
    }

    vec4 texColor = texture(baseTexture, fragUV);
    fragColor = vec4(phong * texColor.rgb, 1.0);
}
` + "\x00"

const lampVertexShader = `#version 430 core
layout(location = 0) in vec3 position;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(position, 1.0);
}
` + "\x00"

const lampFragmentShader = `#version 430 core
out vec4 fragColor;

uniform vec3 lightColor;

void main() {
    fragColor = vec4(lightColor, 1.0);
}
` + "\x00"

// compileShader compiles a single shader stage.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compile failed: %s", log)
	}
	return shader, nil
}

// newProgram compiles and links a vertex/fragment shader pair.
func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vert, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link failed: %s", log)
	}
	return program, nil
}

// uniform returns the location of name in program. The trailing NUL is
// required by gl.Str.
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
