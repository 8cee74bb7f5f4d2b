package exporter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Norgate-AV/koremake/internal/platform"
	"github.com/Norgate-AV/koremake/internal/project"
)

var funcs = template.FuncMap{
	"base":  filepath.Base,
	"slash": filepath.ToSlash,
	"upper": strings.ToUpper,
	"join":  strings.Join,
	"isObjC": func(path string) bool {
		ext := filepath.Ext(path)
		return ext == ".m" || ext == ".mm"
	},
}

// templateExporter renders one template per output file. Output paths are
// templates too, relative to the export directory.
type templateExporter struct {
	name  string
	files []outputFile
}

type outputFile struct {
	path *template.Template
	body *template.Template
}

func newTemplateExporter(name string, files ...[2]string) *templateExporter {
	e := &templateExporter{name: name}

	for _, f := range files {
		e.files = append(e.files, outputFile{
			path: template.Must(template.New(name + "-path").Funcs(funcs).Parse(f[0])),
			body: template.Must(template.New(name + "-body").Funcs(funcs).Parse(f[1])),
		})
	}

	return e
}

func (e *templateExporter) Name() string { return e.name }

func (e *templateExporter) ExportSolution(_ context.Context, p *project.Project, from, to string, target platform.ID, opts Options) error {
	data := newSolution(p, from, to, target, opts)

	for _, f := range e.files {
		var rel, body bytes.Buffer

		if err := f.path.Execute(&rel, data); err != nil {
			return fmt.Errorf("%s exporter: %w", e.name, err)
		}

		if err := f.body.Execute(&body, data); err != nil {
			return fmt.Errorf("%s exporter: rendering %s: %w", e.name, rel.String(), err)
		}

		path := filepath.Join(to, filepath.FromSlash(rel.String()))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		if err := os.WriteFile(path, body.Bytes(), 0o644); err != nil {
			return fmt.Errorf("%s exporter: %w", e.name, err)
		}
	}

	return nil
}
