package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

var ErrNoFrontmatter = errors.New("no frontmatter found")

// Frontmatter is the metadata block at the top of a post's markdown file.
type Frontmatter struct {
	Slug                string     `yaml:"slug"`
	Title               string     `yaml:"title"`
	Date                string     `yaml:"date"`
	Image               string     `yaml:"image"`
	Thumb               string     `yaml:"thumb"`
	Type                string     `yaml:"type"`
	Camera              string     `yaml:"camera"`
	Lens                string     `yaml:"lens"`
	ApertureFriendly    string     `yaml:"aperture_friendly"`
	ExposureFriendly    string     `yaml:"exposure_friendly"`
	FocalLengthFriendly string     `yaml:"focal_length_friendly"`
	ISO                 string     `yaml:"iso"`
	Make                string     `yaml:"make"`
	Tags                stringList `yaml:"tags"`
}

// stringList accepts either a YAML sequence or a single scalar.
type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if v := cleanValue(value.Value); v != "" {
			*l = stringList{v}
		}
		return nil
	case yaml.SequenceNode:
		out := make(stringList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: tags must be strings", item.Line)
			}
			if v := cleanValue(item.Value); v != "" {
				out = append(out, v)
			}
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: tags must be a list of strings", value.Line)
	}
}

// ParseFrontmatter extracts and decodes the leading "---" delimited block of content.
func ParseFrontmatter(content []byte) (*Frontmatter, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte{0}, nil)

	text := string(content)
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return nil, ErrNoFrontmatter
	}

	rest := text[len(frontmatterDelimiter)+1:]
	var block string
	switch {
	case strings.HasPrefix(rest, frontmatterDelimiter):
		block = ""
	default:
		end := strings.Index(rest, "\n"+frontmatterDelimiter)
		if end < 0 {
			return nil, ErrNoFrontmatter
		}
		block = rest[:end]
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, fmt.Errorf("failed to decode frontmatter: %w", err)
	}

	fm.clean()

	return &fm, nil
}

func (f *Frontmatter) clean() {
	for _, field := range []*string{
		&f.Slug, &f.Title, &f.Date, &f.Image, &f.Thumb, &f.Type, &f.Camera, &f.Lens,
		&f.ApertureFriendly, &f.ExposureFriendly, &f.FocalLengthFriendly, &f.ISO, &f.Make,
	} {
		*field = cleanValue(*field)
	}
}

func cleanValue(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
