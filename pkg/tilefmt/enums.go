package tilefmt

import "github.com/kestrelwm/tilecalc/pkg/tile"

func flipString(f tile.Flip) string {
	switch f {
	case tile.FlipHorizontal:
		return "horizontal"
	case tile.FlipVertical:
		return "vertical"
	case tile.FlipBoth:
		return "both"
	default:
		return ""
	}
}

func parseFlip(s string) tile.Flip {
	switch s {
	case "horizontal":
		return tile.FlipHorizontal
	case "vertical":
		return tile.FlipVertical
	case "both":
		return tile.FlipBoth
	default:
		return tile.FlipNone
	}
}

func rotationString(r tile.Rotation) string {
	switch r {
	case tile.East:
		return "east"
	case tile.South:
		return "south"
	case tile.West:
		return "west"
	default:
		return ""
	}
}

func parseRotation(s string) tile.Rotation {
	switch s {
	case "east":
		return tile.East
	case "south":
		return tile.South
	case "west":
		return tile.West
	default:
		return tile.North
	}
}

func reserveString(r tile.Reserve) string {
	switch r {
	case tile.ReserveSpace:
		return "reserve"
	case tile.ReserveAndCenter:
		return "reserve_and_center"
	default:
		return ""
	}
}

func parseReserve(s string) tile.Reserve {
	switch s {
	case "reserve":
		return tile.ReserveSpace
	case "reserve_and_center":
		return tile.ReserveAndCenter
	default:
		return tile.ReserveNone
	}
}

func splitAxisString(a tile.SplitAxis) string {
	switch a {
	case tile.SplitVertical:
		return "vertical"
	case tile.SplitGrid:
		return "grid"
	case tile.SplitFibonacci:
		return "fibonacci"
	case tile.SplitDwindle:
		return "dwindle"
	default:
		return "horizontal"
	}
}

func parseSplitAxis(s string) tile.SplitAxis {
	switch s {
	case "vertical":
		return tile.SplitVertical
	case "grid":
		return tile.SplitGrid
	case "fibonacci":
		return tile.SplitFibonacci
	case "dwindle":
		return tile.SplitDwindle
	default:
		return tile.SplitHorizontal
	}
}

// splitString and parseSplit handle the *SplitAxis "absent means at most
// one window" contract: an empty string round-trips to nil.
func splitString(a *tile.SplitAxis) string {
	if a == nil {
		return ""
	}
	return splitAxisString(*a)
}

func parseSplit(s string) *tile.SplitAxis {
	if s == "" {
		return nil
	}
	a := parseSplitAxis(s)
	return &a
}
