package platform

import "fmt"

// GraphicsAPI identifies a rendering backend.
type GraphicsAPI string

// Supported graphics backends.
const (
	GraphicsDefault    GraphicsAPI = "default"
	GraphicsOpenGL     GraphicsAPI = "opengl"
	GraphicsOpenGL2    GraphicsAPI = "opengl2"
	GraphicsDirect3D9  GraphicsAPI = "direct3d9"
	GraphicsDirect3D11 GraphicsAPI = "direct3d11"
	GraphicsDirect3D12 GraphicsAPI = "direct3d12"
	GraphicsVulkan     GraphicsAPI = "vulkan"
	GraphicsMetal      GraphicsAPI = "metal"
)

// Shader dialects understood by the shader compiler.
const (
	DialectGLSL  = "glsl"
	DialectESSL  = "essl"
	DialectD3D9  = "d3d9"
	DialectD3D11 = "d3d11"
	DialectSPIRV = "spirv"
	DialectMetal = "metal"
)

// GraphicsAPIs returns every supported backend.
func GraphicsAPIs() []GraphicsAPI {
	return []GraphicsAPI{
		GraphicsDefault, GraphicsOpenGL, GraphicsOpenGL2, GraphicsDirect3D9,
		GraphicsDirect3D11, GraphicsDirect3D12, GraphicsVulkan, GraphicsMetal,
	}
}

// ParseGraphicsAPI validates s. An empty string selects GraphicsDefault.
func ParseGraphicsAPI(s string) (GraphicsAPI, error) {
	if s == "" {
		return GraphicsDefault, nil
	}

	for _, api := range GraphicsAPIs() {
		if string(api) == s {
			return api, nil
		}
	}

	return "", fmt.Errorf("unknown graphics api %q", s)
}

// ShaderDialect returns the shader dialect for the platform and backend pair.
// Platforms outside the known set return their own identifier so that plugin
// exporters can define a dialect convention of their own.
func ShaderDialect(p ID, api GraphicsAPI) string {
	switch p {
	case Windows:
		switch api {
		case GraphicsOpenGL, GraphicsOpenGL2:
			return DialectGLSL
		case GraphicsDirect3D9:
			return DialectD3D9
		case GraphicsDirect3D11, GraphicsDirect3D12:
			return DialectD3D11
		case GraphicsVulkan:
			return DialectSPIRV
		default:
			return DialectD3D9
		}
	case WindowsApp:
		return DialectD3D11
	case PlayStation3, Xbox360:
		return DialectD3D9
	case IOS, TvOS:
		if api == GraphicsMetal {
			return DialectMetal
		}
		return DialectESSL
	case OSX:
		if api == GraphicsMetal {
			return DialectMetal
		}
		return DialectGLSL
	case Android:
		if api == GraphicsVulkan {
			return DialectSPIRV
		}
		return DialectESSL
	case Linux:
		if api == GraphicsVulkan {
			return DialectSPIRV
		}
		return DialectGLSL
	case HTML5, Tizen, Pi:
		return DialectESSL
	default:
		return string(p)
	}
}
