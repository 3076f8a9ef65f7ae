// Package tilefmt serializes and deserializes layout definitions as YAML,
// the external wire format named but left abstract by the layout engine
// itself (pkg/tile has no knowledge of encoding).
package tilefmt

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

// Marshal encodes a layout definition as YAML.
func Marshal(layout tile.LayoutDefinition) ([]byte, error) {
	doc := toDoc(layout)
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("tilefmt: marshal %s: %w", layout.Name, err)
	}
	return out, nil
}

// Unmarshal decodes a layout definition from YAML.
func Unmarshal(data []byte) (tile.LayoutDefinition, error) {
	var doc layoutDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return tile.LayoutDefinition{}, fmt.Errorf("tilefmt: unmarshal: %w", err)
	}
	return doc.toLayout(), nil
}

// layoutDoc mirrors tile.LayoutDefinition in a YAML-friendly shape: enums
// spelled as strings, pointers as omittable fields.
type layoutDoc struct {
	Name    string     `yaml:"name"`
	Flip    string     `yaml:"flip,omitempty"`
	Rotate  string     `yaml:"rotate,omitempty"`
	Reserve string     `yaml:"reserve,omitempty"`
	Columns columnsDoc `yaml:"columns"`
}

type columnsDoc struct {
	Flip        string     `yaml:"flip,omitempty"`
	Rotate      string     `yaml:"rotate,omitempty"`
	Main        *mainDoc   `yaml:"main,omitempty"`
	Stack       stackDoc   `yaml:"stack"`
	SecondStack *secondDoc `yaml:"second_stack,omitempty"`
}

type mainDoc struct {
	Count  int     `yaml:"count"`
	Size   sizeDoc `yaml:"size"`
	Flip   string  `yaml:"flip,omitempty"`
	Rotate string  `yaml:"rotate,omitempty"`
	Split  string  `yaml:"split,omitempty"`
}

type stackDoc struct {
	Flip   string `yaml:"flip,omitempty"`
	Rotate string `yaml:"rotate,omitempty"`
	Split  string `yaml:"split,omitempty"`
}

type secondDoc struct {
	Flip   string `yaml:"flip,omitempty"`
	Rotate string `yaml:"rotate,omitempty"`
	Split  string `yaml:"split"`
}

// sizeDoc encodes tile.Size as an untagged scalar: a bare integer for
// Pixel, a bare float for Ratio.
type sizeDoc struct {
	size tile.Size
}

func (s sizeDoc) MarshalYAML() (interface{}, error) {
	if s.size.IsRatio() {
		// Keep a decimal point so a whole-number ratio (0 or 1) is not
		// written as a bare integer and read back as a Pixel size.
		v := strconv.FormatFloat(s.size.RatioValue(), 'f', -1, 64)
		if !strings.Contains(v, ".") {
			v += ".0"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v}, nil
	}
	return s.size.PixelValue(), nil
}

func (s *sizeDoc) UnmarshalYAML(value *yaml.Node) error {
	var asInt int
	if err := value.Decode(&asInt); err == nil && value.Tag == "!!int" {
		s.size = tile.Pixel(asInt)
		return nil
	}
	var asFloat float64
	if err := value.Decode(&asFloat); err != nil {
		return fmt.Errorf("size must be an int (pixels) or a float (ratio): %w", err)
	}
	s.size = tile.Ratio(asFloat)
	return nil
}

func toDoc(l tile.LayoutDefinition) layoutDoc {
	doc := layoutDoc{
		Name:    l.Name,
		Flip:    flipString(l.Flip),
		Rotate:  rotationString(l.Rotate),
		Reserve: reserveString(l.Reserve),
		Columns: columnsDoc{
			Flip:   flipString(l.Columns.Flip),
			Rotate: rotationString(l.Columns.Rotate),
			Stack: stackDoc{
				Flip:   flipString(l.Columns.Stack.Flip),
				Rotate: rotationString(l.Columns.Stack.Rotate),
				Split:  splitString(l.Columns.Stack.Split),
			},
		},
	}
	if l.Columns.Main != nil {
		m := l.Columns.Main
		doc.Columns.Main = &mainDoc{
			Count:  m.Count,
			Size:   sizeDoc{m.Size},
			Flip:   flipString(m.Flip),
			Rotate: rotationString(m.Rotate),
			Split:  splitString(m.Split),
		}
	}
	if l.Columns.SecondStack != nil {
		s := l.Columns.SecondStack
		doc.Columns.SecondStack = &secondDoc{
			Flip:   flipString(s.Flip),
			Rotate: rotationString(s.Rotate),
			Split:  splitAxisString(s.Split),
		}
	}
	return doc
}

func (d layoutDoc) toLayout() tile.LayoutDefinition {
	l := tile.LayoutDefinition{
		Name:    d.Name,
		Flip:    parseFlip(d.Flip),
		Rotate:  parseRotation(d.Rotate),
		Reserve: parseReserve(d.Reserve),
		Columns: tile.Columns{
			Flip:   parseFlip(d.Columns.Flip),
			Rotate: parseRotation(d.Columns.Rotate),
			Stack: tile.Stack{
				Flip:   parseFlip(d.Columns.Stack.Flip),
				Rotate: parseRotation(d.Columns.Stack.Rotate),
				Split:  parseSplit(d.Columns.Stack.Split),
			},
		},
	}
	if d.Columns.Main != nil {
		m := d.Columns.Main
		l.Columns.Main = &tile.Main{
			Count:  m.Count,
			Size:   m.Size.size,
			Flip:   parseFlip(m.Flip),
			Rotate: parseRotation(m.Rotate),
			Split:  parseSplit(m.Split),
		}
	}
	if d.Columns.SecondStack != nil {
		s := d.Columns.SecondStack
		l.Columns.SecondStack = &tile.SecondStack{
			Flip:   parseFlip(s.Flip),
			Rotate: parseRotation(s.Rotate),
			Split:  parseSplitAxis(s.Split),
		}
	}
	return l
}
