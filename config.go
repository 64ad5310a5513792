package navmenu

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Menu is the path to the YAML menu definition.
	Menu string `json:"menu"`
	// Pages that should get a menu in addition to the ones linked from
	// the menu itself.
	Pages []string `json:"pages,omitempty"`
}

// LoadMenu reads a YAML menu definition from disk.
func LoadMenu(path string) (Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	m, err := ParseMenu(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	return m, nil
}

// ParseMenu parses a YAML menu definition. The document is a mapping of
// labels to either a URL, null, or a mapping with the optional keys "url"
// and "children".
//
//	Home: /
//	Guides:
//	  url: /guides
//	  children:
//	    Install: /guides/install
func ParseMenu(data []byte) (Menu, error) {
	var m Menu

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	return m, nil
}

func (m *Menu) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: menu must be a mapping of labels",
			value.Line)
	}

	menu := make(Menu, 0, len(value.Content)/2)
	seen := make(map[string]bool)

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: menu labels must be strings",
				key.Line)
		}

		label := key.Value

		if seen[label] {
			return fmt.Errorf("line %d: duplicate menu label %q",
				key.Line, label)
		}

		seen[label] = true

		node, err := decodeNode(val)
		if err != nil {
			return fmt.Errorf("menu item %q: %w", label, err)
		}

		menu = append(menu, Entry{
			Label: label,
			Node:  node,
		})
	}

	*m = menu

	return nil
}

func decodeNode(value *yaml.Node) (Node, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return Section{}, nil
		}

		return Link(value.Value), nil
	case yaml.MappingNode:
		var s Section

		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]

			switch key.Value {
			case "url":
				if val.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("line %d: url must be a string",
						val.Line)
				}

				if val.Tag != "!!null" {
					s.URL = val.Value
				}
			case "children":
				err := val.Decode(&s.Children)
				if err != nil {
					return nil, fmt.Errorf("children: %w", err)
				}
			default:
				return nil, fmt.Errorf("line %d: unknown field %q",
					key.Line, key.Value)
			}
		}

		return s, nil
	case yaml.AliasNode:
		if value.Alias == nil {
			return nil, errors.New("unresolved alias")
		}

		return decodeNode(value.Alias)
	default:
		return nil, fmt.Errorf("line %d: unsupported menu item value",
			value.Line)
	}
}
