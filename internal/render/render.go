// Package render writes generated puzzles as a single self-contained
// interactive HTML page.
package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/template"

	wordsearch "github.com/LucaBon/word-puzzle-generator"
	"github.com/LucaBon/word-puzzle-generator/pkg/primitives"
)

//go:embed page.html.tmpl
var pageTmpl string

var page = template.Must(template.New("page").Parse(pageTmpl))

// gridStyling holds the CSS values driven by grid size, in pixels.
type gridStyling struct {
	CellSize     int
	FontSize     int
	Gap          int
	BorderRadius int
}

func gridStylingFor(gridSize int) gridStyling {
	switch {
	case gridSize <= 10:
		return gridStyling{CellSize: 50, FontSize: 22, Gap: 3, BorderRadius: 8}
	case gridSize <= 15:
		return gridStyling{CellSize: 45, FontSize: 20, Gap: 3, BorderRadius: 6}
	case gridSize <= 20:
		return gridStyling{CellSize: 35, FontSize: 16, Gap: 2, BorderRadius: 5}
	default:
		return gridStyling{CellSize: 28, FontSize: 14, Gap: 2, BorderRadius: 4}
	}
}

// wordListStyling holds the CSS values driven by word count. SectionWidth
// is in pixels; the rest are literal CSS values.
type wordListStyling struct {
	ItemPadding  string
	ItemFontSize string
	Gap          string
	SectionWidth int
	Columns      int
}

func wordListStylingFor(wordCount int) wordListStyling {
	switch {
	case wordCount <= 10:
		return wordListStyling{ItemPadding: "15px 20px", ItemFontSize: "1.2em", Gap: "12px", SectionWidth: 300, Columns: 1}
	case wordCount <= 20:
		return wordListStyling{ItemPadding: "12px 16px", ItemFontSize: "1.1em", Gap: "10px", SectionWidth: 320, Columns: 1}
	case wordCount <= 30:
		return wordListStyling{ItemPadding: "10px 14px", ItemFontSize: "1em", Gap: "8px", SectionWidth: 380, Columns: 2}
	default:
		return wordListStyling{ItemPadding: "8px 12px", ItemFontSize: "0.95em", Gap: "6px", SectionWidth: 450, Columns: 2}
	}
}

func containerMaxWidth(gridSize int, g gridStyling, w wordListStyling) int {
	gridWidth := gridSize*g.CellSize + (gridSize-1)*g.Gap + 40
	return max(1200, gridWidth+w.SectionWidth+100)
}

// puzzleData is the JSON shape the page script consumes: the letter grid
// and, per word, the cells it occupies as [row, col] pairs.
type puzzleData struct {
	Grid  [][]string          `json:"grid"`
	Words map[string][][2]int `json:"words"`
}

func convert(puzzles []*wordsearch.Puzzle) []puzzleData {
	data := make([]puzzleData, 0, len(puzzles))
	for _, p := range puzzles {
		size := p.Size()

		grid := make([][]string, size)
		for r := range size {
			grid[r] = make([]string, size)
			for c := range size {
				grid[r][c] = string(p.Cell(primitives.Position{Row: r, Col: c}))
			}
		}

		words := make(map[string][][2]int, len(p.Placements()))
		for _, pl := range p.Placements() {
			cells := make([][2]int, len(pl.Cells))
			for i, pos := range pl.Cells {
				cells[i] = [2]int{pos.Row, pos.Col}
			}
			words[pl.Word] = cells
		}

		data = append(data, puzzleData{Grid: grid, Words: words})
	}
	return data
}

type gridCell struct {
	Row, Col int
}

type pageData struct {
	Title          string
	GridSize       int
	Grid           gridStyling
	Words          wordListStyling
	ContainerWidth int
	MediaCellSize  int
	MediaFontSize  int
	Cells          []gridCell
	WordList       []string
	WordCount      int
	PuzzlesJSON    string
}

// WritePage renders puzzles as one interactive HTML page. The first puzzle
// drives the static layout and word list; all of them are embedded for the
// New Puzzle button to cycle through.
func WritePage(w io.Writer, title string, puzzles []*wordsearch.Puzzle) error {
	if len(puzzles) == 0 {
		return fmt.Errorf("no puzzles to render")
	}

	first := puzzles[0]
	size := first.Size()

	words := make([]string, 0, len(first.Placements()))
	for _, pl := range first.Placements() {
		words = append(words, pl.Word)
	}
	slices.Sort(words)

	blob, err := json.Marshal(convert(puzzles))
	if err != nil {
		return fmt.Errorf("marshal puzzles: %w", err)
	}

	grid := gridStylingFor(size)
	list := wordListStylingFor(len(words))

	cells := make([]gridCell, 0, size*size)
	for r := range size {
		for c := range size {
			cells = append(cells, gridCell{Row: r, Col: c})
		}
	}

	return page.Execute(w, pageData{
		Title:          title,
		GridSize:       size,
		Grid:           grid,
		Words:          list,
		ContainerWidth: containerMaxWidth(size, grid, list),
		MediaCellSize:  min(grid.CellSize, 40),
		MediaFontSize:  min(grid.FontSize, 18),
		Cells:          cells,
		WordList:       words,
		WordCount:      len(words),
		PuzzlesJSON:    string(blob),
	})
}

// WriteFile writes the page to path, creating or truncating it.
func WriteFile(path, title string, puzzles []*wordsearch.Puzzle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePage(f, title, puzzles); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
