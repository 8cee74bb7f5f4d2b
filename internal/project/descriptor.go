package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/Norgate-AV/koremake/internal/platform"
)

// Descriptor is the file name of a project description.
const Descriptor = "korefile.hcl"

type descriptorFile struct {
	Project projectBlock `hcl:"project,block"`
	Remain  hcl.Body     `hcl:",remain"`
}

type projectBlock struct {
	Name     string   `hcl:"name,label"`
	Files    []string `hcl:"files,optional"`
	Includes []string `hcl:"includes,optional"`
	Defines  []string `hcl:"defines,optional"`
	DebugDir string   `hcl:"debug_dir,optional"`
	Projects []string `hcl:"projects,optional"`
}

// Exists reports whether dir contains a project descriptor.
func Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, Descriptor))
	return err == nil && !info.IsDir()
}

// evalContext exposes the target and build configuration to descriptor
// expressions, so a descriptor can write
// `defines = platform == "windows" ? ["SYS_WINDOWS"] : []`.
func evalContext(target platform.ID, debug bool) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"platform":      cty.StringVal(string(target)),
			"platform_name": cty.StringVal(platform.DisplayName(target)),
			"known":         cty.BoolVal(platform.IsKnown(target)),
			"debug":         cty.BoolVal(debug),
		},
	}
}

func parseDescriptor(dir string, target platform.ID, debug bool) (*projectBlock, error) {
	path := filepath.Join(dir, Descriptor)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var desc descriptorFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(target, debug), &desc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	if desc.Project.Name == "" {
		return nil, fmt.Errorf("%s: project name must not be empty", path)
	}

	return &desc.Project, nil
}
