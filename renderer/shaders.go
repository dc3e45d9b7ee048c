package renderer

// Uniform and attribute names shared by the shaders and the renderer.
const (
	uniformModelView     = "mvMatrix"
	uniformNormal        = "nMatrix"
	uniformProjection    = "pMatrix"
	uniformView          = "vMatrix"
	uniformLightLocation = "lightLocation"
	uniformAmbient       = "ambientLightColor"
	uniformDiffuse       = "diffuseLightColor"
	uniformSpecular      = "specularLightColor"

	attribPosition = "a_position"
	attribColor    = "a_color"
	attribNormal   = "a_normal"
)

// VertexShader lights each vertex with a point light: ambient plus
// attenuated diffuse and specular terms.
//
// The lighting normal is derived from a_position, not a_normal. a_normal is
// declared and fed but does not reach the lighting; keep the two in step
// with LightWeighting.
const VertexShader = `#version 410 core

uniform mat4 mvMatrix;
uniform mat3 nMatrix;
uniform mat4 pMatrix;
uniform mat4 vMatrix;

uniform vec3 lightLocation;
uniform vec3 ambientLightColor;
uniform vec3 diffuseLightColor;
uniform vec3 specularLightColor;

in vec3 a_position;
in vec4 a_color;
in vec3 a_normal;

out vec4 v_color;
out vec3 vLightWeighting;

const float shininess = 0.5;

void main() {
    vec4 vertexPositionEye4 = vMatrix * mvMatrix * vec4(a_position, 1.0);
    vec3 vertexPositionEye3 = vertexPositionEye4.xyz / vertexPositionEye4.w;

    vec3 lightDirection = normalize(lightLocation - vertexPositionEye3);
    vec3 normal = normalize(nMatrix * a_position.xyz);

    float lightDist = length(lightDirection);
    float lightIntens = 1.0 / (1.0 + 0.1 * lightDist + 0.01 * lightDist * lightDist);

    float diffuseLightDot = max(dot(normal, lightDirection), 0.0);
    vec3 reflectionVector = normalize(reflect(-lightDirection, normal));
    vec3 viewVectorEye = -normalize(vertexPositionEye3);
    float specularLightDot = max(dot(reflectionVector, viewVectorEye), 0.0);
    float specularLightParam = pow(specularLightDot, shininess);

    gl_Position = pMatrix * vMatrix * mvMatrix * vec4(a_position, 1.0);
    v_color = a_color;
    vLightWeighting = ambientLightColor + (diffuseLightColor * diffuseLightDot + specularLightColor * specularLightParam) * lightIntens;
}
`

// FragmentShader modulates the vertex color by the interpolated weighting.
const FragmentShader = `#version 410 core

in vec4 v_color;
in vec3 vLightWeighting;

out vec4 color;

void main() {
    color = vec4(vLightWeighting.rgb * v_color.rgb, v_color.a);
}
`
