package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/msl"
	"github.com/gogpu/naga/spirv"

	kerrors "github.com/Norgate-AV/koremake/internal/errors"
	"github.com/Norgate-AV/koremake/internal/platform"
)

// compileWGSL translates a WGSL source with naga instead of spawning krafix.
// Diagnostics are reported through the same error channel as krafix stderr.
func (c *Compiler) compileWGSL(job Job) error {
	source, err := os.ReadFile(job.Source)
	if err != nil {
		return fmt.Errorf("reading shader %s: %w", job.Source, err)
	}

	ast, err := naga.Parse(string(source))
	if err != nil {
		c.log.Error(err.Error())
		return kerrors.ErrShaderCompile
	}

	module, err := naga.LowerWithSource(ast, string(source))
	if err != nil {
		c.log.Error(err.Error())
		return kerrors.ErrShaderCompile
	}

	out, ext, err := c.generate(module, job.Dialect)
	if err != nil {
		c.log.Error(err.Error())
		return kerrors.ErrShaderCompile
	}

	dest := job.Dest + ext
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	return os.WriteFile(dest, out, 0o644)
}

func (c *Compiler) generate(module *ir.Module, dialect string) ([]byte, string, error) {
	switch dialect {
	case platform.DialectSPIRV:
		code, err := naga.GenerateSPIRV(module, spirv.Options{Version: spirv.Version1_3, Debug: c.debug})
		return code, ".spirv", err
	case platform.DialectGLSL:
		code, _, err := glsl.Compile(module, glsl.DefaultOptions())
		return []byte(code), ".glsl", err
	case platform.DialectESSL:
		opts := glsl.DefaultOptions()
		opts.LangVersion = glsl.VersionES300
		code, _, err := glsl.Compile(module, opts)
		return []byte(code), ".essl", err
	case platform.DialectMetal:
		code, _, err := msl.Compile(module, msl.DefaultOptions())
		return []byte(code), ".metal", err
	case platform.DialectD3D11:
		code, _, err := hlsl.Compile(module, hlsl.DefaultOptions())
		return []byte(code), ".hlsl", err
	default:
		return nil, "", fmt.Errorf("wgsl shaders cannot target the %s dialect", dialect)
	}
}
