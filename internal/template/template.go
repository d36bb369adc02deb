// Package template renders a template's files into a project directory
package template

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/cbroglie/mustache"

	"github.com/leet-tools/leet/internal/leet/catalog"
	lerrors "github.com/leet-tools/leet/internal/leet/errors"
	"github.com/leet-tools/leet/internal/leet/leetcode"
	"github.com/leet-tools/leet/internal/log"
	"github.com/leet-tools/leet/internal/utils"
)

// Render context keys
const (
	KeyQuestionId       = "question_id"
	KeyCodeSnippet      = "code_snippet"
	KeyQuestionTitle    = "question_title"
	KeyExampleTestCases = "example_test_cases"
)

var contextKeys = map[string]bool{
	KeyQuestionId:       true,
	KeyCodeSnippet:      true,
	KeyQuestionTitle:    true,
	KeyExampleTestCases: true,
}

// noPartials refuses every {{> name}} so nothing is read from outside the
// template directory.
type noPartials struct{}

func (noPartials) Get(name string) (string, error) {
	return "", fmt.Errorf("partial %q is not supported", name)
}

// ==================================================
// Filesystem Abstraction
// ==================================================

// sourceFunc returns the filesystem rooted at the template directory
type sourceFunc func(templateDir string) fs.FS

func osSource(templateDir string) fs.FS { return os.DirFS(templateDir) }

// Renderer writes rendered template files
type Renderer struct {
	source sourceFunc
}

// New returns a Renderer reading templates from disk
func New() *Renderer {
	return &Renderer{source: osSource}
}

// NewWithFS returns a Renderer reading templates from fsys, which plays the
// role of the template directory.
func NewWithFS(fsys fs.FS) *Renderer {
	return &Renderer{source: func(string) fs.FS { return fsys }}
}

// ==================================================
// Main Template Processing
// ==================================================

// SelectSnippet returns the first snippet whose Lang or LangSlug equals language
func SelectSnippet(snippets []leetcode.CodeSnippet, language string) (*leetcode.CodeSnippet, error) {
	for i := range snippets {
		if snippets[i].Lang == language || snippets[i].LangSlug == language {
			return &snippets[i], nil
		}
	}
	return nil, lerrors.E(lerrors.KindLanguageNotAvailable, language, nil)
}

// Context builds the values exposed to templates
func Context(q *leetcode.Question, snippet *leetcode.CodeSnippet) map[string]string {
	return map[string]string{
		KeyQuestionId:       q.QuestionId,
		KeyCodeSnippet:      snippet.Code,
		KeyQuestionTitle:    q.QuestionTitle,
		KeyExampleTestCases: q.ExampleTestCases,
	}
}

// Render renders every file of template name into targetDir, in order.
// It stops at the first failure, leaving earlier files in place.
func (r *Renderer) Render(q *leetcode.Question, name, targetDir string, src catalog.Source) error {
	entry, err := catalog.Resolve(src, name)
	if err != nil {
		return err
	}

	snippet, err := SelectSnippet(q.CodeSnippets, entry.Language)
	if err != nil {
		return err
	}
	log.Debug("Selected snippet %s (%s) for language %s", snippet.Lang, snippet.LangSlug, entry.Language)

	ctx := Context(q, snippet)
	fsys := r.source(src.TemplateDir())

	for _, file := range entry.Files {
		if err := processFile(fsys, entry, file, ctx, targetDir); err != nil {
			return err
		}
	}
	return nil
}

func processFile(fsys fs.FS, entry *catalog.Entry, file string, ctx map[string]string, targetDir string) error {
	rel := utils.NormalizePath(file)
	srcPath := path.Join(entry.Name, rel)
	if !fs.ValidPath(rel) || rel == "." || !fs.ValidPath(srcPath) {
		return lerrors.E(lerrors.KindTemplate, file, fmt.Errorf("not a local relative path"))
	}

	log.Info("Rendering template for %s using file: %s", file, filepath.Join(entry.Dir, filepath.FromSlash(rel)))

	content, err := processTemplate(fsys, srcPath, ctx)
	if err != nil {
		return lerrors.E(lerrors.KindTemplate, file, err)
	}

	destination := filepath.Join(targetDir, filepath.FromSlash(rel))
	if err := writeContent(destination, content); err != nil {
		return lerrors.E(lerrors.KindTemplate, file, err)
	}
	log.InfoH2("Wrote %s", destination)
	return nil
}

func processTemplate(fsys fs.FS, file string, ctx map[string]string) (io.Reader, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %q: %w", file, err)
	}

	tmpl, err := mustache.ParseStringPartialsRaw(string(data), noPartials{}, true)
	if err != nil {
		return nil, fmt.Errorf("template parse error: %w", err)
	}
	if err := checkTags(tmpl.Tags(), false); err != nil {
		return nil, err
	}

	out, err := tmpl.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("template execute error: %w", err)
	}

	return bytes.NewBufferString(out), nil
}

// checkTags rejects any tag that would not resolve against the render
// context: unknown names, partials, and "." outside a section.
func checkTags(tags []mustache.Tag, inSection bool) error {
	for _, tag := range tags {
		switch tag.Type() {
		case mustache.Partial:
			return fmt.Errorf("partial {{> %s}} is not supported", tag.Name())
		case mustache.Variable:
			if tag.Name() == "." && inSection {
				continue
			}
			if !contextKeys[tag.Name()] {
				return fmt.Errorf("unknown placeholder %q", tag.Name())
			}
		case mustache.Section, mustache.InvertedSection:
			if !contextKeys[tag.Name()] {
				return fmt.Errorf("unknown section %q", tag.Name())
			}
			if err := checkTags(tag.Tags(), true); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported tag %q", tag.Name())
		}
	}
	return nil
}

// ==================================================
// Shared Function
// ==================================================

//nolint:gosec // G304: Destination path is a validated local path under the project directory
func writeContent(destination string, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0750); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", filepath.Dir(destination), err)
	}

	//nolint:gosec // G302: Project source files are meant to be readable
	destFile, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(destFile, content); err != nil {
		_ = destFile.Close()
		return fmt.Errorf("write error: %w", err)
	}

	return destFile.Close()
}
