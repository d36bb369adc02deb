// Package catalog resolves template names into the folder and file list
// that make up a template.
package catalog

import (
	"path/filepath"

	"github.com/leet-tools/leet/internal/leet/config"
	lerrors "github.com/leet-tools/leet/internal/leet/errors"
)

// Source is the read-only view of the configuration the catalog needs.
// *config.Config satisfies it.
type Source interface {
	TemplateDir() string
	GetTemplate(name string) (config.LanguageTemplate, bool)
}

// Entry is a resolved template
type Entry struct {
	Name     string
	Dir      string
	Language string
	Files    []string
}

// Resolve maps name to templateDir/name and the template's files
func Resolve(src Source, name string) (*Entry, error) {
	tmpl, ok := src.GetTemplate(name)
	if !ok {
		return nil, lerrors.E(lerrors.KindUnknownTemplate, name, nil)
	}
	return &Entry{
		Name:     name,
		Dir:      filepath.Join(src.TemplateDir(), name),
		Language: tmpl.Language,
		Files:    tmpl.Files,
	}, nil
}
