package godice

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	_ "github.com/mattn/godice/statik"
	"github.com/rakyll/statik/fs"
)

//go:generate statik -src=lib

// Presets maps a roll name to its parsed notation.
type Presets map[string]Spec

type presetFile struct {
	Presets map[string]string `toml:"presets"`
}

// LoadPresets parses every TOML file embedded from lib/.
func LoadPresets() (Presets, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	presets := make(Presets)
	for _, fi := range fis {
		if path.Ext(fi.Name()) != ".toml" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		err = presets.Read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.Name(), err)
		}
	}
	return presets, nil
}

// Read decodes a presets TOML document and adds its entries, replacing
// any existing entry with the same name.
func (p Presets) Read(r io.Reader) error {
	var file presetFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return err
	}
	return p.add(file)
}

// LoadFile reads a presets TOML file from disk.
func (p Presets) LoadFile(name string) error {
	var file presetFile
	if _, err := toml.DecodeFile(name, &file); err != nil {
		return err
	}
	if err := p.add(file); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p Presets) add(file presetFile) error {
	for name, notation := range file.Presets {
		spec, err := Parse(notation)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		p[strings.ToLower(name)] = spec
	}
	return nil
}

// Lookup returns the preset registered under name.
func (p Presets) Lookup(name string) (Spec, bool) {
	spec, ok := p[strings.ToLower(strings.TrimSpace(name))]
	return spec, ok
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve parses arg as a preset name first and as notation otherwise.
func (p Presets) Resolve(arg string) (Spec, error) {
	if spec, ok := p.Lookup(arg); ok {
		return spec, nil
	}
	return Parse(arg)
}
