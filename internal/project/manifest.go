package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded ember.toml. Keys missing from the file keep the
// values of Default.
type Manifest struct {
	// путь к ember.toml, пустой для Default
	Path   string       `toml:"-"`
	Root   string       `toml:"-"`
	Lex    LexConfig    `toml:"lex"`
	Cache  CacheConfig  `toml:"cache"`
	Output OutputConfig `toml:"output"`
}

type LexConfig struct {
	Extensions     []string `toml:"extensions"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"` // 0 means GOMAXPROCS
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // relative to Root; empty selects the user cache dir
}

type OutputConfig struct {
	Color  string `toml:"color"`  // auto|on|off
	Format string `toml:"format"` // pretty|json
}

// Default returns the built-in configuration used without ember.toml.
func Default() *Manifest {
	return &Manifest{
		Lex: LexConfig{
			Extensions:     []string{".em"},
			MaxDiagnostics: 100,
		},
		Cache:  CacheConfig{Enabled: true},
		Output: OutputConfig{Color: "auto", Format: "pretty"},
	}
}

// Load decodes the manifest at path over Default and validates it.
func Load(path string) (*Manifest, error) {
	m := Default()
	meta, err := toml.DecodeFile(path, m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	// пустой список в файле не должен отключать все расширения
	if meta.IsDefined("lex", "extensions") && len(m.Lex.Extensions) == 0 {
		return nil, fmt.Errorf("%s: [lex].extensions must not be empty", path)
	}
	m.Path = path
	m.Root = filepath.Dir(path)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Discover finds ember.toml above startDir and loads it.
// Without a manifest it returns Default and ok=false.
func Discover(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return Default(), false, nil
	}
	m, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Validate checks value ranges and enumerations.
func (m *Manifest) Validate() error {
	for _, ext := range m.Lex.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[lex].extensions: %q must start with a dot", ext)
		}
	}
	if m.Lex.MaxDiagnostics < 0 {
		return fmt.Errorf("[lex].max_diagnostics must be >= 0, got %d", m.Lex.MaxDiagnostics)
	}
	if m.Lex.Jobs < 0 {
		return fmt.Errorf("[lex].jobs must be >= 0, got %d", m.Lex.Jobs)
	}
	switch m.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", m.Output.Color)
	}
	switch m.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("[output].format must be pretty or json, got %q", m.Output.Format)
	}
	return nil
}

// CacheDir resolves [cache].dir against Root. An empty result means the
// default user cache directory.
func (m *Manifest) CacheDir() string {
	dir := m.Cache.Dir
	if dir == "" || filepath.IsAbs(dir) || m.Root == "" {
		return dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}
