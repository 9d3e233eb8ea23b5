// Package rulefile reads and writes the table of commit types a project
// recognizes.
//
// A rule file is YAML or JSON:
//
//	types:
//	  "# comment": {description: comment starts with #}
//	  feat: {description: A new feature, emoji: ":sparkles:", category: feature}
//	denyAdlibType: true
package rulefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/shu-go/findcfg"
	"github.com/shu-go/orderedmap"
	"gopkg.in/yaml.v3"

	"github.com/shu-go/conventional"
)

const (
	userConfigFolder = "conventional"

	DefaultName = ".cx"
)

type Rule struct {
	Types *orderedmap.OrderedMap[string, conventional.TypeInfo] `json:"types" yaml:"types"`

	DenyAdlibType bool `json:"denyAdlibType" yaml:"denyAdlibType"`
}

func Default(emoji bool) Rule {
	return Rule{
		Types:         conventional.DefaultTypeMap(emoji),
		DenyAdlibType: false,
	}
}

func (r Rule) Table() *conventional.TypeTable {
	return conventional.NewTypeTable(r.Types)
}

// Parser returns a header parser recognizing the types of r.
func (r Rule) Parser() *conventional.Parser {
	opts := []conventional.Option{conventional.WithTypes(r.Table())}
	if r.DenyAdlibType {
		opts = append(opts, conventional.DenyAdlibType())
	}
	return conventional.NewParser(opts...)
}

var validate = validator.New()

// Validate checks every non-comment type key and entry of r.
func (r Rule) Validate() error {
	if r.Types == nil {
		return nil
	}

	for _, k := range r.Types.Keys() {
		if strings.HasPrefix(k, "#") {
			continue
		}
		if !conventional.CommitType(strings.ToLower(k)).Valid() || strings.ContainsAny(k, "(!:") {
			return fmt.Errorf("type %q: invalid type token", k)
		}
		info, _ := r.Types.Get(k)
		if err := validate.Struct(info); err != nil {
			return fmt.Errorf("type %q: %w", k, err)
		}
	}
	return nil
}

type finder struct {
	exactPath string
	logger    *log.Logger
}

type Option func(*finder)

// ExactPath makes Find try filename before any other location.
func ExactPath(filename string) Option {
	return func(f *finder) {
		f.exactPath = filename
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(f *finder) {
		f.logger = logger
	}
}

// Find looks for a rule file named .cx.yaml or .cx.json, in order: the exact
// path, dir, the user config dir and the executable's dir.
// If none is usable it returns the default rule and the path a rule file
// would be written to.
func Find(dir string, opts ...Option) (*Rule, string) {
	f := finder{logger: log.Default()}
	for _, o := range opts {
		o(&f)
	}

	cfg := findcfg.New(
		findcfg.Name(DefaultName),
		findcfg.ExactPath(f.exactPath),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(dir),
		findcfg.UserConfigDir(userConfigFolder),
		findcfg.ExecutableDir(),
	)
	found := cfg.Find()
	if found != nil {
		r, err := Read(found.Path)
		if err == nil {
			f.logger.Debug("rule file loaded", "path", found.Path)
			return r, found.Path
		}
		f.logger.Warn("rule file ignored", "path", found.Path, "err", err)
	}

	r := Default(false)
	return &r, cfg.FallbackPath()
}

// Read reads a rule file. The format is chosen by extension; files with any
// other extension are tried as YAML, then JSON.
func Read(filename string) (*Rule, error) {
	if s, err := os.Stat(filename); err != nil {
		return nil, err
	} else if s.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	r, err := decode(filepath.Ext(filename), content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return r, nil
}

func decode(ext string, content []byte) (*Rule, error) {
	r := Rule{
		Types: orderedmap.New[string, conventional.TypeInfo](),
	}

	if in(ext, ".yaml", ".yml") {
		if err := yaml.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if in(ext, ".json") {
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if err := yaml.Unmarshal(content, &r); err != nil {
		r.Types = orderedmap.New[string, conventional.TypeInfo]()
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	return &r, nil
}

// Write writes r to filename, as JSON if the extension is .json and as YAML
// otherwise.
func Write(filename string, r Rule) error {
	var content []byte
	var err error
	if in(filepath.Ext(filename), ".json") {
		content, err = json.MarshalIndent(r, "", "  ")
	} else {
		content, err = yaml.Marshal(r)
	}
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(content)
	if err != nil {
		return err
	}

	return nil
}

func in(s string, choices ...string) bool {
	if len(choices) == 0 {
		return false
	}

	for i := 0; i < len(choices); i++ {
		if strings.EqualFold(s, choices[i]) {
			return true
		}
	}

	return false
}
