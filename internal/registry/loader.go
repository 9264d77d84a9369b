package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/blueprint-utils/models"
)

// LoadDir registers every model definition found in dir and links them.
func (r *Registry) LoadDir(dir string) error {
	return r.LoadFS(os.DirFS(dir))
}

// LoadFS registers every *.yaml and *.yml file at the root of fsys in
// lexical order and links the result.
func (r *Registry) LoadFS(fsys fs.FS) error {
	var names []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("error listing model definitions: %w", err)
		}
		names = append(names, matches...)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("error reading model definition %s: %w", name, err)
		}
		if err = r.register(name, data); err != nil {
			return err
		}
	}

	r.logger.Info().Int("files", len(names)).Msg("model definitions loaded")

	return r.Link()
}

// LoadFile registers the models of a single definition file and links the
// registry.
func (r *Registry) LoadFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading model definition %s: %w", filePath, err)
	}
	if err = r.register(filepath.Base(filePath), data); err != nil {
		return err
	}

	return r.Link()
}

func (r *Registry) register(name string, data []byte) error {
	defs, err := decodeModels(name, data)
	if err != nil {
		return err
	}
	for _, m := range defs {
		if err = r.Register(m); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// decodeModels decodes every YAML document of a definition file. A single
// document without an identity takes the lowercased file name.
func decodeModels(name string, data []byte) ([]*models.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var out []*models.Model
	for {
		m := new(models.Model)
		err := dec.Decode(m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrDecodingModel, name, err)
		}
		out = append(out, m)
	}

	if len(out) == 1 && out[0].Identity == "" {
		out[0].Identity = strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))
	}

	return out, nil
}
