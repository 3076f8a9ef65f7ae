package tilefmt

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

// customLayoutsFile is the shape of a user's custom-layouts TOML file: a
// list of layout tables under [[layout]]. TOML has no untagged-scalar
// trick for Size the way the YAML codec uses, so the main size is spelled
// as two optional fields instead. If both are set, size_pixel wins; if
// neither is set, the main size is Ratio(0.5).
type customLayoutsFile struct {
	Layout []customLayoutDoc `toml:"layout"`
}

type customLayoutDoc struct {
	Name    string           `toml:"name"`
	Flip    string           `toml:"flip"`
	Rotate  string           `toml:"rotate"`
	Reserve string           `toml:"reserve"`
	Columns customColumnsDoc `toml:"columns"`
}

type customColumnsDoc struct {
	Flip        string           `toml:"flip"`
	Rotate      string           `toml:"rotate"`
	Main        *customMainDoc   `toml:"main"`
	Stack       customStackDoc   `toml:"stack"`
	SecondStack *customSecondDoc `toml:"second_stack"`
}

type customMainDoc struct {
	Count     int      `toml:"count"`
	SizePixel *int     `toml:"size_pixel"`
	SizeRatio *float64 `toml:"size_ratio"`
	Flip      string   `toml:"flip"`
	Rotate    string   `toml:"rotate"`
	Split     string   `toml:"split"`
}

type customStackDoc struct {
	Flip   string `toml:"flip"`
	Rotate string `toml:"rotate"`
	Split  string `toml:"split"`
}

type customSecondDoc struct {
	Flip   string `toml:"flip"`
	Rotate string `toml:"rotate"`
	Split  string `toml:"split"`
}

// LoadCustomLayoutsTOML reads a TOML file of [[layout]] tables and returns
// the decoded layout definitions, in file order, suitable for passing to
// tile.NewRegistry as overrides.
func LoadCustomLayoutsTOML(path string) ([]tile.LayoutDefinition, error) {
	var doc customLayoutsFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("tilefmt: decode custom layouts %s: %w", path, err)
	}
	out := make([]tile.LayoutDefinition, len(doc.Layout))
	for i, d := range doc.Layout {
		out[i] = d.toLayout()
	}
	return out, nil
}

func (d customLayoutDoc) toLayout() tile.LayoutDefinition {
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
		size := tile.Ratio(0.5)
		switch {
		case m.SizePixel != nil:
			size = tile.Pixel(*m.SizePixel)
		case m.SizeRatio != nil:
			size = tile.Ratio(*m.SizeRatio)
		}
		l.Columns.Main = &tile.Main{
			Count:  m.Count,
			Size:   size,
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
