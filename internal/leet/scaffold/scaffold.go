// Package scaffold creates a fresh project directory for one problem and
// populates it by rendering a template.
//
// A call either leaves a fully rendered directory behind or removes the
// directory it created. A directory that already existed is never touched.
//
// Example usage:
//
//	s := scaffold.New(cfg, leetcode.New())
//	dir, err := s.Run(ctx, "py", "https://leetcode.com/problems/two-sum/", "")
//	if errors.Is(err, lerrors.ErrDirectoryExists) {
//	    // ask the user to remove dir
//	}
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leet-tools/leet/internal/leet/catalog"
	lerrors "github.com/leet-tools/leet/internal/leet/errors"
	"github.com/leet-tools/leet/internal/leet/leetcode"
	"github.com/leet-tools/leet/internal/log"
	"github.com/leet-tools/leet/internal/template"
)

// Fetcher retrieves a normalized question for a problem URL
type Fetcher interface {
	Fetch(ctx context.Context, link string) (*leetcode.Question, error)
}

// Renderer renders template name into an existing target directory
type Renderer interface {
	Render(q *leetcode.Question, name, targetDir string, src catalog.Source) error
}

// Scaffolder wires configuration, fetcher and renderer together
type Scaffolder struct {
	Config   catalog.Source
	Fetcher  Fetcher
	Renderer Renderer
	// WorkDir anchors new project directories; empty means the process CWD.
	WorkDir string
}

// New returns a Scaffolder rendering from disk into the current directory
func New(cfg catalog.Source, fetcher Fetcher) *Scaffolder {
	return &Scaffolder{
		Config:   cfg,
		Fetcher:  fetcher,
		Renderer: template.New(),
	}
}

// ProjectName returns override when set, otherwise the title without spaces
func ProjectName(q *leetcode.Question, override string) string {
	if override != "" {
		return override
	}
	return q.QuestionTitleNoSpaces
}

// Run checks the template, fetches the problem behind link and scaffolds it.
// It returns the created project directory.
func (s *Scaffolder) Run(ctx context.Context, templateName, link, projectName string) (string, error) {
	if _, err := catalog.Resolve(s.Config, templateName); err != nil {
		return "", err
	}
	if s.Fetcher == nil {
		return "", fmt.Errorf("scaffolder has no fetcher")
	}

	question, err := s.Fetcher.Fetch(ctx, link)
	if err != nil {
		return "", err
	}

	return s.Scaffold(question, templateName, projectName)
}

// Scaffold creates the project directory for q and renders templateName
// into it. Any failure after the directory is created removes it again.
func (s *Scaffolder) Scaffold(q *leetcode.Question, templateName, projectName string) (string, error) {
	targetDir, err := s.targetDir(q, projectName)
	if err != nil {
		return "", err
	}

	if err := createProjectDir(targetDir); err != nil {
		return "", err
	}

	renderer := s.Renderer
	if renderer == nil {
		renderer = template.New()
	}

	if err := renderer.Render(q, templateName, targetDir, s.Config); err != nil {
		log.Error("Failed to render template %s: %v", templateName, err)
		cleanUp(targetDir)
		return "", err
	}

	log.Info("Project created at %s", targetDir)
	return targetDir, nil
}

func (s *Scaffolder) targetDir(q *leetcode.Question, projectName string) (string, error) {
	cwd := s.WorkDir
	if cwd == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return "", lerrors.E(lerrors.KindIO, "current directory", err)
		}
	}
	return filepath.Join(cwd, ProjectName(q, projectName)), nil
}

// createProjectDir refuses to reuse anything already at dir, including a
// dangling symlink.
func createProjectDir(dir string) error {
	log.Info("Creating project directory: %s", dir)

	if _, err := os.Lstat(dir); err == nil {
		return lerrors.E(lerrors.KindDirectoryExists, dir, nil)
	} else if !os.IsNotExist(err) {
		return lerrors.E(lerrors.KindIO, dir, err)
	}

	if err := os.Mkdir(dir, 0750); err != nil {
		if os.IsExist(err) {
			return lerrors.E(lerrors.KindDirectoryExists, dir, nil)
		}
		return lerrors.E(lerrors.KindIO, dir, err)
	}
	return nil
}

// cleanUp removes dir; a failure is logged and otherwise ignored
func cleanUp(dir string) {
	log.Warn("Cleaning up %s", dir)
	if err := os.RemoveAll(dir); err != nil {
		log.Error("Failed to clean up %s: %v", dir, err)
	}
}
