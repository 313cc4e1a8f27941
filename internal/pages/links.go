package pages

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"weekly-checklist/internal/model"
)

//go:embed links.yaml
var defaultLinks []byte

type linkCatalogue struct {
	Sections []model.NavigatorSection `yaml:"sections"`
}

// LoadLinks reads the navigator catalogue from path, or the built-in one when path is empty.
func LoadLinks(path string) ([]model.NavigatorSection, error) {
	data := defaultLinks
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("pages.LoadLinks: %w", err)
		}
		data = b
	}
	return parseLinks(data)
}

func parseLinks(data []byte) ([]model.NavigatorSection, error) {
	var cat linkCatalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("pages.parseLinks: %w", err)
	}
	for i, s := range cat.Sections {
		if s.Title == "" {
			return nil, fmt.Errorf("pages.parseLinks: section %d has no title", i)
		}
		for j, l := range s.Links {
			if l.Title == "" || l.URL == "" {
				return nil, fmt.Errorf("pages.parseLinks: section %q link %d needs title and url", s.Title, j)
			}
		}
	}
	return cat.Sections, nil
}
