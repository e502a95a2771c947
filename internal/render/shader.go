package render

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxLights is the shader-side light array size.
const maxLights = 8

// ambientTerm keeps shadowed faces from going fully black.
var ambientTerm = [4]float32{0.18, 0.2, 0.24, 1.0}

// litShader is the shared directional-light shader and its cached uniform
// locations. Loaded lazily on first material so GPU work happens after the
// window exists.
type litShader struct {
	shader rl.Shader
	loaded bool

	dirLoc       [maxLights]int32
	colorLoc     [maxLights]int32
	intensityLoc [maxLights]int32
	countLoc     int32
	viewPosLoc   int32
	ambientLoc   int32
	specPowerLoc int32
	specStrLoc   int32
}

func (s *litShader) ensure() error {
	if s.loaded {
		return nil
	}
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return fmt.Errorf("render: lit shader failed to compile")
	}
	s.shader = sh
	for i := 0; i < maxLights; i++ {
		s.dirLoc[i] = rl.GetShaderLocation(sh, fmt.Sprintf("lightDir[%d]", i))
		s.colorLoc[i] = rl.GetShaderLocation(sh, fmt.Sprintf("lightColor[%d]", i))
		s.intensityLoc[i] = rl.GetShaderLocation(sh, fmt.Sprintf("lightIntensity[%d]", i))
	}
	s.countLoc = rl.GetShaderLocation(sh, "lightCount")
	s.viewPosLoc = rl.GetShaderLocation(sh, "viewPos")
	s.ambientLoc = rl.GetShaderLocation(sh, "ambient")
	s.specPowerLoc = rl.GetShaderLocation(sh, "specularPower")
	s.specStrLoc = rl.GetShaderLocation(sh, "specularStrength")
	s.loaded = true
	return nil
}

// applyFrame uploads camera position, ambient, and the current light table.
// A light recolored to black still occupies its slot and contributes zero.
func (s *litShader) applyFrame(viewPos rl.Vector3, lights []*Light) {
	if !s.loaded {
		return
	}
	if s.viewPosLoc >= 0 {
		rl.SetShaderValueV(s.shader, s.viewPosLoc, []float32{viewPos.X, viewPos.Y, viewPos.Z}, rl.ShaderUniformVec3, 1)
	}
	if s.ambientLoc >= 0 {
		rl.SetShaderValueV(s.shader, s.ambientLoc, ambientTerm[:], rl.ShaderUniformVec4, 1)
	}
	count := len(lights)
	if count > maxLights {
		count = maxLights
	}
	if s.countLoc >= 0 {
		rl.SetShaderValueV(s.shader, s.countLoc, []float32{float32(count)}, rl.ShaderUniformFloat, 1)
	}
	for i := 0; i < count; i++ {
		l := lights[i]
		dir := normalize(l.Position.X, l.Position.Y, l.Position.Z)
		if s.dirLoc[i] >= 0 {
			rl.SetShaderValueV(s.shader, s.dirLoc[i], dir[:], rl.ShaderUniformVec3, 1)
		}
		if s.colorLoc[i] >= 0 {
			col := [3]float32{float32(l.color.R) / 255, float32(l.color.G) / 255, float32(l.color.B) / 255}
			rl.SetShaderValueV(s.shader, s.colorLoc[i], col[:], rl.ShaderUniformVec3, 1)
		}
		if s.intensityLoc[i] >= 0 {
			rl.SetShaderValueV(s.shader, s.intensityLoc[i], []float32{l.intensity}, rl.ShaderUniformFloat, 1)
		}
	}
}

// applyMesh uploads the per-material specular parameters.
func (s *litShader) applyMesh(m *Mesh) {
	if !s.loaded {
		return
	}
	if s.specPowerLoc >= 0 {
		rl.SetShaderValue(s.shader, s.specPowerLoc, []float32{m.specPower}, rl.ShaderUniformFloat)
	}
	if s.specStrLoc >= 0 {
		rl.SetShaderValue(s.shader, s.specStrLoc, []float32{m.specStrength}, rl.ShaderUniformFloat)
	}
}

func normalize(x, y, z float32) [3]float32 {
	len := math32.Sqrt(x*x + y*y + z*z)
	if len == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{x / len, y / len, z / len}
}

// Vertex/fragment pair: per-pixel Blinn-Phong over an array of directional
// lights. Same vertex attributes as raylib generated meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
#define MAX_LIGHTS 8
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec4 ambient;
// lightCount is a float: the binding uploads uniforms through []float32.
uniform float lightCount;
uniform vec3 lightDir[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightIntensity[MAX_LIGHTS];
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 shade = ambient.rgb * colDiffuse.rgb;
  int count = int(lightCount);
  for (int i = 0; i < count && i < MAX_LIGHTS; i++) {
    vec3 L = normalize(lightDir[i]);
    float NdotL = max(dot(N, L), 0.0);
    shade += colDiffuse.rgb * NdotL * lightColor[i] * lightIntensity[i];
    if (NdotL > 0.0 && specularStrength > 0.0) {
      vec3 H = normalize(L + V);
      float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
      shade += lightColor[i] * lightIntensity[i] * spec;
    }
  }
  finalColor = vec4(shade, colDiffuse.a);
}
`
)
