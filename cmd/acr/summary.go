package main

import (
	"github.com/katalvlaran/acr/grid"
	"github.com/katalvlaran/acr/mapfile"
	"github.com/katalvlaran/acr/region"
	"github.com/katalvlaran/acr/regiongraph"
)

type summary struct {
	BuildID          string        `json:"build_id"`
	Map              mapInfo       `json:"map"`
	Stats            region.Stats  `json:"stats"`
	Truncated        bool          `json:"truncated"`
	UnclaimedPockets int           `json:"unclaimed_pockets"`
	Regions          []regionInfo  `json:"regions"`
	Skipped          []skippedInfo `json:"skipped,omitempty"`
	Warnings         []string      `json:"warnings,omitempty"`
	Graph            *graphInfo    `json:"graph,omitempty"`
	Render           []string      `json:"render,omitempty"`
}

type mapInfo struct {
	Rows    int        `json:"rows"`
	Cols    int        `json:"cols"`
	Players int        `json:"players"`
	Hill    grid.Point `json:"hill"`
}

type regionInfo struct {
	ID       int          `json:"id"`
	Order    int          `json:"order"`
	Parent   int          `json:"parent"`
	Top      int          `json:"top"`
	Bottom   int          `json:"bottom"`
	Left     int          `json:"left"`
	Right    int          `json:"right"`
	Area     int          `json:"area"`
	Seed     grid.Point   `json:"seed"`
	Origin   grid.Point   `json:"origin"`
	Children []int        `json:"children,omitempty"`
	Seeds    []grid.Point `json:"seeds,omitempty"`
}

type skippedInfo struct {
	Seed   grid.Point `json:"seed"`
	Order  int        `json:"order"`
	Parent int        `json:"parent"`
	Error  string     `json:"error"`
}

type graphInfo struct {
	Vertices    []regiongraph.Vertex `json:"vertices"`
	Edges       []regiongraph.Edge   `json:"edges"`
	TotalWeight int64                `json:"total_weight"`
}

// summarize flattens a finished build into its JSON report. Region children
// are reported by id rather than arena index.
func summarize(m *mapfile.Map, tree *region.Tree, conf config) (summary, error) {
	s := summary{
		BuildID:          tree.BuildID.String(),
		Map:              mapInfo{Rows: m.Rows, Cols: m.Cols, Players: m.Players, Hill: m.Hill()},
		Stats:            tree.Stats(),
		Truncated:        tree.Truncated,
		UnclaimedPockets: len(m.Grid.FreeComponents()),
		Warnings:         tree.Warnings,
	}

	tree.Walk(func(_ int, r region.Region) bool {
		info := regionInfo{
			ID:     r.ID,
			Order:  r.Order,
			Parent: r.Parent,
			Top:    r.Rect.Top,
			Bottom: r.Rect.Bottom,
			Left:   r.Rect.Left,
			Right:  r.Rect.Right,
			Area:   r.Rect.Area(),
			Seed:   r.Seed,
			Origin: r.Origin,
			Seeds:  r.ChildSeeds,
		}
		for _, c := range r.Children {
			info.Children = append(info.Children, tree.Regions[c].ID)
		}
		s.Regions = append(s.Regions, info)
		return true
	})

	for _, sk := range tree.Skipped {
		s.Skipped = append(s.Skipped, skippedInfo{
			Seed:   sk.Seed,
			Order:  sk.Order,
			Parent: sk.Parent,
			Error:  sk.Err.Error(),
		})
	}

	if conf.Graph {
		g, err := regiongraph.Assemble(tree)
		if err != nil {
			return summary{}, err
		}
		s.Graph = &graphInfo{Vertices: g.Vertices, Edges: g.Edges, TotalWeight: g.TotalWeight()}
	}

	if conf.Render {
		s.Render = renderLines(m.Grid)
	}
	return s, nil
}

// renderLines returns the grid one row per string, claimed cells as '#'.
func renderLines(g *grid.Grid) []string {
	lines := make([]string, 0, g.Rows)
	row := make([]byte, g.Cols)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			row[x] = g.At(grid.Point{X: x, Y: y}).String()[0]
		}
		lines = append(lines, string(row))
	}
	return lines
}
