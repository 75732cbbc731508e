package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"mesh-generator/core"
	"mesh-generator/math"
	"mesh-generator/scene"
)

// GPUSurface holds the OpenGL buffer objects for one uploaded surface.
type GPUSurface struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	Primitive  uint32
}

// Renderer draws generated meshes with a single directional light. It is
// meant for previewing, not for production rendering.
type Renderer struct {
	program uint32

	mvpLoc      int32
	modelLoc    int32
	lightDirLoc int32
	diffuseLoc  int32
	ambientLoc  int32
	lightingLoc int32
	useTexLoc   int32
	texLoc      int32

	LightDir  math.Vec3
	Wireframe bool

	surfaces map[*scene.Surface]*GPUSurface
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec4 fragColor;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragColor   = inColor;
    fragNormal  = mat3(model) * inNormal;
    fragUV      = inUV;
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;
in vec2 fragUV;

uniform vec3 lightDir;
uniform vec4 diffuse;
uniform vec4 ambient;
uniform bool lighting;
uniform bool useTexture;
uniform sampler2D tex0;

out vec4 outColor;

void main() {
    vec4 base = fragColor;
    if (useTexture) {
        base *= texture(tex0, fragUV);
    }
    if (!lighting) {
        outColor = base * ambient;
        return;
    }
    float ndl = max(dot(normalize(fragNormal), normalize(-lightDir)), 0.0);
    vec3 lit = base.rgb * (ambient.rgb + diffuse.rgb * ndl);
    outColor = vec4(lit, base.a * diffuse.a);
}
` + "\x00"

// NewRenderer compiles the preview program. The GL context must be current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("preview shader: %w", err)
	}

	r := &Renderer{
		program:  prog,
		LightDir: math.NewVec3(-0.4, -1, -0.6),
		surfaces: make(map[*scene.Surface]*GPUSurface),
	}
	r.mvpLoc = gl.GetUniformLocation(prog, gl.Str("mvp\x00"))
	r.modelLoc = gl.GetUniformLocation(prog, gl.Str("model\x00"))
	r.lightDirLoc = gl.GetUniformLocation(prog, gl.Str("lightDir\x00"))
	r.diffuseLoc = gl.GetUniformLocation(prog, gl.Str("diffuse\x00"))
	r.ambientLoc = gl.GetUniformLocation(prog, gl.Str("ambient\x00"))
	r.lightingLoc = gl.GetUniformLocation(prog, gl.Str("lighting\x00"))
	r.useTexLoc = gl.GetUniformLocation(prog, gl.Str("useTexture\x00"))
	r.texLoc = gl.GetUniformLocation(prog, gl.Str("tex0\x00"))

	gl.Enable(gl.DEPTH_TEST)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return r, nil
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears color and depth.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws every surface of mesh. Background meshes are drawn
// centered on the camera so they never move relative to the viewer.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, cam *scene.OrbitCamera) {
	model := math.Mat4Identity()
	if mesh.Order == scene.OrderBackground {
		model = math.Mat4Translation(cam.Position)
	}
	mvp := model.Mul(cam.ViewProjection())

	mat := mesh.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))
	gl.Uniform3f(r.lightDirLoc, r.LightDir.X, r.LightDir.Y, r.LightDir.Z)
	r.applyMaterial(mat)

	for _, s := range mesh.Surfaces {
		gpu := r.ensureUploaded(s)
		if gpu == nil {
			continue
		}

		var tex *scene.Texture
		if len(s.Textures) > 0 {
			tex = s.Textures[0]
			if tex.GLID == 0 {
				if err := UploadTexture(tex); err != nil {
					tex = nil
				}
			}
		}
		if tex != nil {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
			gl.Uniform1i(r.texLoc, 0)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		gl.BindVertexArray(gpu.VAO)
		gl.DrawElements(gpu.Primitive, gpu.IndexCount, gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}
}

func (r *Renderer) applyMaterial(mat *scene.Material) {
	gl.Uniform4f(r.diffuseLoc, mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B, mat.Diffuse.A)
	gl.Uniform4f(r.ambientLoc, mat.Ambient.R, mat.Ambient.G, mat.Ambient.B, mat.Ambient.A)
	gl.Uniform1i(r.lightingLoc, boolToInt(mat.Lighting))

	if mat.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if mat.BackfaceCulling {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// ReleaseMesh frees the GPU buffers of every surface of mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	for _, s := range mesh.Surfaces {
		gpu, ok := r.surfaces[s]
		if !ok {
			continue
		}
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.surfaces, s)
		for _, t := range s.Textures {
			DeleteTexture(t)
		}
	}
}

func (r *Renderer) Destroy() {
	for s, gpu := range r.surfaces {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.surfaces, s)
	}
	gl.DeleteProgram(r.program)
}

func (r *Renderer) ensureUploaded(s *scene.Surface) *GPUSurface {
	if gpu, ok := r.surfaces[s]; ok {
		return gpu
	}
	if len(s.Vertices) == 0 || len(s.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUSurface{
		IndexCount: int32(len(s.Indices)),
		Primitive:  gl.TRIANGLES,
	}
	if s.Primitive == scene.PrimitiveLines {
		gpu.Primitive = gl.LINES
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.Vertices)*int(stride), gl.Ptr(s.Vertices), gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Color))))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(s.Indices)*4, gl.Ptr(s.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.surfaces[s] = gpu
	return gpu
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
