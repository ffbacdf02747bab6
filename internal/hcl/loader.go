package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/monoforge/internal/config"
	"github.com/vk/monoforge/internal/ctxlog"
	"github.com/vk/monoforge/internal/fsutil"
	"github.com/vk/monoforge/internal/schema"
)

// Loader reads configuration documents from disk.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every document file under `path` (a single file or a directory
// searched recursively for .hcl files), merges the built-in defaults for
// recognized command names, validates the merged document, and translates
// it into the format-agnostic model. Any schema violation aborts the load.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := fsutil.CollectFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered configuration files.", "count", len(files))

	parser := hclparse.NewParser()
	var raw schema.Document

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, config.SchemaErrorf(file, "", "failed to parse document: %s", diags.Error())
		}

		// Check top-level structure against the shared document schema
		// before decoding, so stray blocks are reported as schema errors.
		if _, diags := hclFile.Body.Content(schema.DocumentSchema()); diags.HasErrors() {
			return nil, config.SchemaErrorf(file, "", "document structure is invalid: %s", diags.Error())
		}

		var fileDoc schema.Document
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &fileDoc); diags.HasErrors() {
			return nil, config.SchemaErrorf(file, "", "failed to decode document: %s", diags.Error())
		}

		raw.Phases = append(raw.Phases, fileDoc.Phases...)
		raw.Commands = append(raw.Commands, fileDoc.Commands...)
		raw.Parameters = append(raw.Parameters, fileDoc.Parameters...)
		logger.Debug("Loaded configuration file.", "file", file)
	}

	mergeBuiltinDefaults(&raw)

	if err := schema.ValidateDocument(&raw, path); err != nil {
		return nil, err
	}

	doc := translateDocument(&raw, path)
	logger.Debug("HCL loading complete.",
		"phases", len(doc.Phases), "commands", len(doc.Commands), "parameters", len(doc.Parameters))
	return doc, nil
}

// ParseDocument loads a single in-memory document, used by tests and by
// callers that already hold the document text. `source` names the document
// in diagnostics.
func (l *Loader) ParseDocument(ctx context.Context, src []byte, source string) (*config.Document, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, source)
	if diags.HasErrors() {
		return nil, config.SchemaErrorf(source, "", "failed to parse document: %s", diags.Error())
	}
	if _, diags := hclFile.Body.Content(schema.DocumentSchema()); diags.HasErrors() {
		return nil, config.SchemaErrorf(source, "", "document structure is invalid: %s", diags.Error())
	}

	var raw schema.Document
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &raw); diags.HasErrors() {
		return nil, config.SchemaErrorf(source, "", "failed to decode document: %s", diags.Error())
	}

	mergeBuiltinDefaults(&raw)

	if err := schema.ValidateDocument(&raw, source); err != nil {
		return nil, err
	}
	return translateDocument(&raw, source), nil
}
