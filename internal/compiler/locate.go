package compiler

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Norgate-AV/koremake/internal/platform"
)

// BackendsDir is the project-local directory holding out-of-tree backends.
const BackendsDir = "Backends"

// sysSuffix is the host suffix of bundled tool executables.
func sysSuffix() string {
	switch runtime.GOOS {
	case "windows":
		return ".exe"
	case "darwin":
		return "-osx"
	}

	switch runtime.GOARCH {
	case "arm":
		return "-linuxarm"
	case "arm64":
		return "-linuxaarch64"
	case "amd64":
		return "-linux64"
	default:
		return "-linux32"
	}
}

// FindCompiler resolves the shader compiler executable. The bundled compiler
// under koreDir is the default; a platform specific compiler shipped in a
// project backend overrides it, the last one found winning. An empty result
// means no compiler is available.
func FindCompiler(koreDir, projectDir string, target platform.ID) string {
	compilerPath := ""

	if koreDir != "" {
		compilerPath = filepath.Join(koreDir, "Tools", "krafix", "krafix"+sysSuffix())
	}

	libdirs, err := os.ReadDir(filepath.Join(projectDir, BackendsDir))
	if err != nil {
		return compilerPath
	}

	names := []string{
		"krafix-" + string(target) + ".exe",
		"krafix-" + string(target),
	}

	for _, ld := range libdirs {
		if !ld.IsDir() {
			continue
		}

		for _, name := range names {
			exe := filepath.Join(projectDir, BackendsDir, ld.Name(), "krafix", name)
			if info, err := os.Stat(exe); err == nil && !info.IsDir() {
				compilerPath = exe
				break
			}
		}
	}

	return compilerPath
}
