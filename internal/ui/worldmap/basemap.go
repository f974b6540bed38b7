package worldmap

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed basemap.txt
var defaultBasemap string

// ErrTiles is returned when the basemap cannot be loaded or parsed.
var ErrTiles = errors.New("worldmap: invalid basemap")

// Basemap is an equirectangular land mask covering the whole globe: the
// first row starts at 90°N, the first column at 180°W.
type Basemap struct {
	cols, rows int
	land       []bool
}

// DefaultBasemap returns the embedded basemap.
func DefaultBasemap() *Basemap {
	b, err := ParseBasemap(strings.NewReader(defaultBasemap))
	if err != nil {
		panic(err) // embedded file is static
	}
	return b
}

// LoadBasemap reads a basemap file. An empty path selects the embedded one.
func LoadBasemap(path string) (*Basemap, error) {
	if path == "" {
		return DefaultBasemap(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTiles, err)
	}
	defer f.Close()
	return ParseBasemap(f)
}

// ParseBasemap reads a land mask: one line per row, '#' for land and '.'
// or ' ' for water. All rows must have the same length, twice the number
// of rows.
func ParseBasemap(r io.Reader) (*Basemap, error) {
	var (
		b     Basemap
		lines []string
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTiles, err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrTiles)
	}

	b.rows = len(lines)
	b.cols = len(lines[0])
	if b.cols != 2*b.rows {
		return nil, fmt.Errorf("%w: %dx%d is not 2:1", ErrTiles, b.cols, b.rows)
	}

	b.land = make([]bool, 0, b.cols*b.rows)
	for i, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrTiles, i+1, len(line), b.cols)
		}
		for j := range len(line) {
			switch line[j] {
			case '#':
				b.land = append(b.land, true)
			case '.', ' ':
				b.land = append(b.land, false)
			default:
				return nil, fmt.Errorf("%w: row %d col %d: unexpected %q", ErrTiles, i+1, j+1, line[j])
			}
		}
	}
	return &b, nil
}

// Size returns the basemap dimensions in cells.
func (b *Basemap) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Land reports whether the point lies on land.
func (b *Basemap) Land(lat, lng float64) bool {
	col := int((lng + 180) / 360 * float64(b.cols))
	row := int((90 - lat) / 180 * float64(b.rows))
	col = min(max(col, 0), b.cols-1)
	row = min(max(row, 0), b.rows-1)
	return b.land[row*b.cols+col]
}
