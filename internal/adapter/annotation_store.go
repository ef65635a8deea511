package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// AnnotationStore writes computed annotations.
type AnnotationStore interface {
	SaveAnnotations(path m.Path, sets []m.AnnotationSet) error
	WriteAnnotations(w io.Writer, sets []m.AnnotationSet) error
}

// LocalAnnotationStore writes annotations as YAML documents.
type LocalAnnotationStore struct{}

// NewAnnotationStore constructs an AnnotationStore implementation.
func NewAnnotationStore() *LocalAnnotationStore {
	return &LocalAnnotationStore{}
}

type annotationsYAML struct {
	Entities []entityYAML `yaml:"entities"`
}

type entityYAML struct {
	Scope      string         `yaml:"scope"`
	File       string         `yaml:"file"`
	Function   string         `yaml:"function,omitempty"`
	Categories []categoryYAML `yaml:"categories"`
}

type categoryYAML struct {
	Name  string `yaml:"name"`
	Lines []int  `yaml:"lines,flow"`
}

// SaveAnnotations writes sets to path, creating parent directories as needed.
func (s *LocalAnnotationStore) SaveAnnotations(path m.Path, sets []m.AnnotationSet) error {
	if path == "" {
		return fmt.Errorf("annotation output path is empty")
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create annotation file: %w", err)
	}

	if err := s.WriteAnnotations(f, sets); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close annotation file: %w", err)
	}

	return nil
}

// WriteAnnotations encodes sets as YAML to w. Empty categories are omitted.
func (s *LocalAnnotationStore) WriteAnnotations(w io.Writer, sets []m.AnnotationSet) error {
	doc := annotationsYAML{Entities: make([]entityYAML, 0, len(sets))}

	for _, set := range sets {
		entity := entityYAML{
			Scope:      string(set.Scope),
			File:       set.File,
			Function:   set.Function,
			Categories: []categoryYAML{},
		}

		for _, c := range m.Categories() {
			lines := set.Annotation.Lines(c)
			if lines.Len() == 0 {
				continue
			}

			entity.Categories = append(entity.Categories, categoryYAML{Name: c.String(), Lines: lines.Lines()})
		}

		doc.Entities = append(doc.Entities, entity)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode annotations: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode annotations: %w", err)
	}

	return nil
}
