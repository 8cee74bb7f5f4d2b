package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName_KnownPlatforms(t *testing.T) {
	for _, p := range All() {
		assert.NotEqual(t, Unknown, DisplayName(p), "platform %q should have a display name", p)
		assert.True(t, IsKnown(p))
	}
}

func TestDisplayName_Unknown(t *testing.T) {
	tests := []ID{"", "switch", "Windows", "krom"}

	for _, p := range tests {
		assert.Equal(t, Unknown, DisplayName(p), "DisplayName(%q)", p)
		assert.False(t, IsKnown(p))
	}
}

func TestShaderDialect(t *testing.T) {
	tests := []struct {
		name     string
		platform ID
		api      GraphicsAPI
		want     string
	}{
		{"windows default", Windows, GraphicsDefault, DialectD3D9},
		{"windows opengl", Windows, GraphicsOpenGL, DialectGLSL},
		{"windows opengl2", Windows, GraphicsOpenGL2, DialectGLSL},
		{"windows d3d9", Windows, GraphicsDirect3D9, DialectD3D9},
		{"windows d3d11", Windows, GraphicsDirect3D11, DialectD3D11},
		{"windows d3d12", Windows, GraphicsDirect3D12, DialectD3D11},
		{"windows vulkan", Windows, GraphicsVulkan, DialectSPIRV},
		{"windows app ignores api", WindowsApp, GraphicsVulkan, DialectD3D11},
		{"ps3", PlayStation3, GraphicsDefault, DialectD3D9},
		{"xbox360", Xbox360, GraphicsDefault, DialectD3D9},
		{"ios metal", IOS, GraphicsMetal, DialectMetal},
		{"ios default", IOS, GraphicsDefault, DialectESSL},
		{"tvos metal", TvOS, GraphicsMetal, DialectMetal},
		{"osx metal", OSX, GraphicsMetal, DialectMetal},
		{"osx default", OSX, GraphicsOpenGL, DialectGLSL},
		{"android vulkan", Android, GraphicsVulkan, DialectSPIRV},
		{"android default", Android, GraphicsDefault, DialectESSL},
		{"linux vulkan", Linux, GraphicsVulkan, DialectSPIRV},
		{"linux default", Linux, GraphicsDefault, DialectGLSL},
		{"html5", HTML5, GraphicsVulkan, DialectESSL},
		{"tizen", Tizen, GraphicsDefault, DialectESSL},
		{"pi", Pi, GraphicsDefault, DialectESSL},
		{"plugin platform passes through", ID("krom"), GraphicsVulkan, "krom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShaderDialect(tt.platform, tt.api))
		})
	}
}

func TestShaderDialect_Deterministic(t *testing.T) {
	for _, p := range All() {
		for _, api := range GraphicsAPIs() {
			first := ShaderDialect(p, api)
			assert.NotEmpty(t, first)
			assert.Equal(t, first, ShaderDialect(p, api))
		}
	}
}

func TestParseGraphicsAPI(t *testing.T) {
	api, err := ParseGraphicsAPI("")
	require.NoError(t, err)
	assert.Equal(t, GraphicsDefault, api)

	api, err = ParseGraphicsAPI("vulkan")
	require.NoError(t, err)
	assert.Equal(t, GraphicsVulkan, api)

	_, err = ParseGraphicsAPI("glide")
	assert.Error(t, err)
}
