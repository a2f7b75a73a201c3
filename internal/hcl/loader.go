// Package hcl loads swungdash model files written in HCL into the
// format-agnostic config model.
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Telofy/swungdash/internal/config"
	"github.com/Telofy/swungdash/internal/ctxlog"
	"github.com/Telofy/swungdash/internal/fsutil"
	"github.com/Telofy/swungdash/internal/schema"
)

// Loader implements config.Loader for .hcl model files.
type Loader struct{}

// NewLoader creates a new HCL model-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file or directory at path and folds every file into one
// agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	log := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat model path: %w", err)
	}
	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no .hcl model files under %s", path)
		}
	}

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, p := range paths {
		file, diags := parser.ParseHCLFile(p)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing %s: %w", p, diags)
		}
		var f schema.File
		if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("decoding %s: %w", p, diags)
		}
		if err := translate(&f, model); err != nil {
			return nil, fmt.Errorf("translating %s: %w", p, err)
		}
		log.Debug("Model file loaded.", "path", p)
	}
	return model, nil
}
