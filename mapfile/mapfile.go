// Package mapfile loads maps in the Ants tournament text format into a grid.Grid.
//
// A map file starts with a header and continues with one "m" line per row:
//
//	rows 4
//	cols 6
//	players 2
//	m ......
//	m .%%0..
//	m ..%%1.
//	m ......
//
// Tiles: '%' water; '.', '*' (food) and '!' (dead ant) land; '0'..'9' the hill
// of that player; 'a'..'j' and 'A'..'J' ants standing on land; '?' unseen.
// Everything but water and unseen tiles loads as Passable.
//
// Every format problem is reported as grid.ErrMapFormat with the 1-based line
// number it was found on.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/acr/grid"
)

// Map is a loaded map file.
type Map struct {
	Rows, Cols, Players int

	// Grid holds the classified tiles.
	Grid *grid.Grid

	// Hills lists hill coordinates per player, in reading order.
	Hills [][]grid.Point
}

// Hill returns the first hill of player 0, the root seed for region growth.
func (m *Map) Hill() grid.Point { return m.Hills[0][0] }

// Load reads and parses the map file at path.
func Load(path string, opts grid.Options) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads a map from r.
//
// Errors (all wrapping grid.ErrMapFormat):
//   - a header value is missing or not a positive integer;
//   - a row holds an unknown tile or has the wrong length;
//   - the row count differs from the header;
//   - the dimensions exceed opts.MaxDim (also wraps grid.ErrAllocation);
//   - player 0 has no hill, or a hill digit is not below the player count.
func Parse(r io.Reader, opts grid.Options) (*Map, error) {
	p := parser{header: map[string]int{}, opts: opts}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.finish()
}

type parser struct {
	opts   grid.Options
	header map[string]int
	line   int
	m      *Map
	y      int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", grid.ErrMapFormat, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) parseLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	key, value, _ := strings.Cut(line, " ")
	switch key {
	case "rows", "cols", "players":
		if p.m != nil {
			return p.errorf("%s after the first map row", key)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return p.errorf("%s must be a positive integer, got %q", key, value)
		}
		p.header[key] = n
		return nil
	case "m":
		if p.m == nil {
			if err := p.start(); err != nil {
				return err
			}
		}
		return p.row(value)
	default:
		// Ants maps may carry extra header keys; only the three above matter here.
		logs.WithTag("line", p.line).
			WithTag("key", key).
			Debug("unknown map header key ignored")
		return nil
	}
}

// start validates the header and allocates the grid at the first map row.
func (p *parser) start() error {
	for _, k := range []string{"rows", "cols", "players"} {
		if _, ok := p.header[k]; !ok {
			return p.errorf("header field %q missing before the first map row", k)
		}
	}
	rows, cols, players := p.header["rows"], p.header["cols"], p.header["players"]
	g, err := grid.New(rows, cols, p.opts)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", grid.ErrMapFormat, p.line, err)
	}
	p.m = &Map{
		Rows:    rows,
		Cols:    cols,
		Players: players,
		Grid:    g,
		Hills:   make([][]grid.Point, players),
	}
	return nil
}

func (p *parser) row(tiles string) error {
	m := p.m
	if p.y >= m.Rows {
		return p.errorf("more than %d map rows", m.Rows)
	}
	if len(tiles) != m.Cols {
		return p.errorf("row %d has %d tiles, want %d", p.y, len(tiles), m.Cols)
	}
	for x := 0; x < len(tiles); x++ {
		pt := grid.Point{X: x, Y: p.y}
		c, player, err := classify(tiles[x])
		if err != nil {
			return p.errorf("%v at %s", err, pt)
		}
		if player >= 0 {
			if player >= m.Players {
				return p.errorf("hill of player %d at %s but only %d players", player, pt, m.Players)
			}
			m.Hills[player] = append(m.Hills[player], pt)
		}
		if err := m.Grid.Set(pt, c); err != nil {
			return p.errorf("%v", err)
		}
	}
	p.y++
	return nil
}

// classify maps a tile to its cell state and, for hills, the owning player
// (-1 otherwise).
func classify(ch byte) (grid.Cell, int, error) {
	switch {
	case ch == '%':
		return grid.Water, -1, nil
	case ch == '?':
		return grid.OutOfSight, -1, nil
	case ch == '.' || ch == '*' || ch == '!':
		return grid.Passable, -1, nil
	case ch >= '0' && ch <= '9':
		return grid.Passable, int(ch - '0'), nil
	case ch >= 'a' && ch <= 'j', ch >= 'A' && ch <= 'J':
		return grid.Passable, -1, nil
	}
	return 0, -1, fmt.Errorf("unknown tile %q", ch)
}

// finish checks what can only be checked at end of input.
func (p *parser) finish() (*Map, error) {
	if p.m == nil {
		if err := p.start(); err != nil {
			return nil, err
		}
	}
	if p.y != p.m.Rows {
		return nil, p.errorf("%d map rows, header says %d", p.y, p.m.Rows)
	}
	if len(p.m.Hills[0]) == 0 {
		return nil, p.errorf("player 0 has no hill")
	}
	return p.m, nil
}
