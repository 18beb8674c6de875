package engine

// Pipeline names one of the two fixed shader programs. The set is closed:
// render entry points select a variant explicitly, there is no dynamic
// material dispatch.
type Pipeline int

const (
	// PipelineDepth transforms geometry and relies on the depth test
	// alone; its color output is a constant.
	PipelineDepth Pipeline = iota

	// PipelineMain does directional diffuse shading. The smoothness
	// uniform (0.0 or 1.0) mixes screen-space flat normals with the
	// interpolated vertex normals.
	PipelineMain
)

var pipelineLibrary = map[Pipeline]struct {
	vertex, fragment string
	attributes       []string
	uniforms         []string
}{
	PipelineDepth: {
		vertex: `
			#version 150

			in vec3 position;

			uniform mat4 model;
			uniform mat4 view;
			uniform mat4 projection;

			void main() {
				gl_Position = projection * view * model * vec4(position, 1.0);
			}`,
		fragment: `
			#version 150

			out vec4 fragmentColor;

			void main() {
				fragmentColor = vec4(1.0);
			}`,
		attributes: []string{"position", "normal"},
		uniforms:   []string{"model", "view", "projection"},
	},

	PipelineMain: {
		vertex: `
			#version 150

			in vec3 position;
			in vec3 normal;

			uniform mat4 model;
			uniform mat4 view;
			uniform mat4 projection;

			out vec3 worldPosition;
			out vec3 worldNormal;

			void main() {
				vec4 world = model * vec4(position, 1.0);
				worldPosition = world.xyz;
				worldNormal = mat3(model) * normal;
				gl_Position = projection * view * world;
			}`,
		fragment: `
			#version 150

			in vec3 worldPosition;
			in vec3 worldNormal;

			uniform float smoothness;

			out vec4 fragmentColor;

			const vec3 lightDirection = normalize(vec3(0.5, 1.0, 0.3));
			const vec3 diffuse = vec3(0.9);
			const vec3 ambient = vec3(0.1);

			void main() {
				vec3 flatNormal = normalize(cross(dFdx(worldPosition), dFdy(worldPosition)));
				vec3 n = normalize(mix(flatNormal, normalize(worldNormal), smoothness));
				float intensity = max(dot(n, lightDirection), 0.0);
				fragmentColor = vec4(ambient + diffuse * intensity, 1.0);
			}`,
		attributes: []string{"position", "normal"},
		uniforms:   []string{"model", "view", "projection", "smoothness"},
	},
}

// NewPipelineProgram compiles and links one of the fixed pipeline
// variants. Requires a current gl context.
func NewPipelineProgram(p Pipeline) (*Program, error) {
	data := pipelineLibrary[p]
	return NewProgram(data.vertex, data.fragment, data.attributes, data.uniforms)
}
