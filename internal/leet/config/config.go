//nolint:revive // Config struct field names match YAML structure
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	lerrors "github.com/leet-tools/leet/internal/leet/errors"
	"github.com/leet-tools/leet/internal/log"
	"github.com/leet-tools/leet/internal/utils"
)

const (
	HOME_CONFIG_PATH = ".config/leet/config.yaml"
	ETC_CONFIG_PATH  = "/etc/leet/config.yaml"
)

// etcConfigPath is a variable so tests can point the system fallback elsewhere.
var etcConfigPath = ETC_CONFIG_PATH

// LanguageTemplate is a named template: the snippet language to pick and
// the ordered list of files to render.
type LanguageTemplate struct {
	Language string   `yaml:"language"`
	Files    []string `yaml:"files"`
}

// Settings holds the "settings" block of config.yaml
type Settings struct {
	TemplateDir string `yaml:"templateDir"`
}

type fileData struct {
	Settings  *Settings                   `yaml:"settings"`
	Templates map[string]LanguageTemplate `yaml:"templates"`
}

// Config is the loaded, read-only configuration.
type Config struct {
	path        string
	templateDir string
	templates   map[string]LanguageTemplate
}

// New builds a configuration without touching the filesystem
func New(path, templateDir string, templates map[string]LanguageTemplate) *Config {
	if templates == nil {
		templates = map[string]LanguageTemplate{}
	}
	return &Config{
		path:        path,
		templateDir: templateDir,
		templates:   templates,
	}
}

// Load resolves, parses and validates the config file.
// An empty explicitPath falls back to the well-known locations.
func Load(explicitPath string) (*Config, error) {
	confPath, err := ResolvePath(explicitPath)
	if err != nil {
		return nil, err
	}

	log.Info("Parsing YAML at path: %s", confPath)

	var data fileData
	if err := utils.ParseYamlFromFile(confPath, &data); err != nil {
		var pathErr *fs.PathError
		if lerrors.As(err, &pathErr) {
			return nil, lerrors.E(lerrors.KindFileOpen, confPath, err)
		}
		return nil, lerrors.E(lerrors.KindYamlParse, confPath, err)
	}

	if err := checkRequired(&data); err != nil {
		return nil, lerrors.E(lerrors.KindYamlParse, confPath, err)
	}

	templateDir := data.Settings.TemplateDir
	if utils.IsHomeRelative(templateDir) {
		home, err := homeDir()
		if err != nil {
			return nil, err
		}
		templateDir = utils.ExpandHome(templateDir, home)
	}

	cfg := New(confPath, templateDir, data.Templates)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("Successfully parsed the config file")
	return cfg, nil
}

// ResolvePath picks the config file: the explicit path if given, then
// $HOME/.config/leet/config.yaml, then /etc/leet/config.yaml.
func ResolvePath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}

	home, err := homeDir()
	if err != nil {
		return "", err
	}

	homePath := filepath.Join(home, HOME_CONFIG_PATH)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}
	log.Debug("No config at %s", homePath)

	if _, err := os.Stat(etcConfigPath); err == nil {
		return etcConfigPath, nil
	}
	log.Debug("No config at %s", etcConfigPath)

	return "", lerrors.E(lerrors.KindConfigNotFound, "", nil)
}

func homeDir() (string, error) {
	home, ok := os.LookupEnv("HOME")
	if !ok {
		return "", lerrors.E(lerrors.KindEnvMissing, "HOME", nil)
	}
	return home, nil
}

func checkRequired(data *fileData) error {
	if data.Settings == nil || data.Settings.TemplateDir == "" {
		return fmt.Errorf("missing required key settings.templateDir")
	}
	if data.Templates == nil {
		return fmt.Errorf("missing required key templates")
	}
	for name, tmpl := range data.Templates {
		if tmpl.Language == "" {
			return fmt.Errorf("missing required key templates.%s.language", name)
		}
		if tmpl.Files == nil {
			return fmt.Errorf("missing required key templates.%s.files", name)
		}
	}
	return nil
}

// Validate checks that the template directory exists
func (c *Config) Validate() error {
	fi, err := os.Stat(c.templateDir)
	if err != nil {
		return lerrors.E(lerrors.KindValidation, c.templateDir, fmt.Errorf("template directory does not exist"))
	}
	if !fi.IsDir() {
		return lerrors.E(lerrors.KindValidation, c.templateDir, fmt.Errorf("template directory is not a directory"))
	}
	return nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// TemplateDir returns the root holding one folder per template
func (c *Config) TemplateDir() string {
	return c.templateDir
}

// ListTemplates returns the template names in alphabetical order
func (c *Config) ListTemplates() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTemplate looks a template up by exact name
func (c *Config) GetTemplate(name string) (LanguageTemplate, bool) {
	tmpl, ok := c.templates[name]
	return tmpl, ok
}
