// Package termcanvas paints dock areas onto a grid of terminal cells.
//
// Geometry stays in layout units: a cell covers CellWidth by CellHeight
// units, rectangles cover every cell they touch, and points land in the
// cell that contains them.
package termcanvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0

	// continuation marks the trailing cell of a wide rune.
	continuation rune = 0
)

// Cell is one terminal character with its colours.
type Cell struct {
	Rune rune
	FG   port.Color
	BG   port.Color
}

// cellRect is a half-open range of columns and rows.
type cellRect struct {
	x0, y0, x1, y1 int
}

func (r cellRect) empty() bool { return r.x1 <= r.x0 || r.y1 <= r.y0 }

func (r cellRect) intersect(o cellRect) cellRect {
	return cellRect{
		x0: max(r.x0, o.x0),
		y0: max(r.y0, o.y0),
		x1: min(r.x1, o.x1),
		y1: min(r.y1, o.y1),
	}
}

func (r cellRect) contains(col, row int) bool {
	return col >= r.x0 && col < r.x1 && row >= r.y0 && row < r.y1
}

// Canvas implements port.Renderer over a cell grid. It is not safe for
// concurrent use.
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	cells        []Cell
	clips        []cellRect
	renderer     *lipgloss.Renderer
}

var _ port.Renderer = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*Canvas)

// WithCellSize sets the layout units covered by one cell. Non-positive
// values keep the defaults.
func WithCellSize(width, height float64) Option {
	return func(c *Canvas) {
		if width > 0 {
			c.cellW = width
		}
		if height > 0 {
			c.cellH = height
		}
	}
}

// WithRenderer sets the lipgloss renderer used by String.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *Canvas) {
		if r != nil {
			c.renderer = r
		}
	}
}

// New creates a canvas of cols by rows cells.
func New(cols, rows int, opts ...Option) *Canvas {
	c := &Canvas{
		cellW:    DefaultCellWidth,
		cellH:    DefaultCellHeight,
		renderer: lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid and drops the clip stack.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.clips = c.clips[:0]
	c.Clear(port.Color{A: 1})
}

// Size returns the grid dimensions in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// CellSize returns the layout units covered by one cell.
func (c *Canvas) CellSize() (width, height float64) { return c.cellW, c.cellH }

// Bounds returns the grid extent in layout units.
func (c *Canvas) Bounds() entity.Rect {
	return entity.Rect{W: float64(c.cols) * c.cellW, H: float64(c.rows) * c.cellH}
}

// CellCenter maps a cell to the layout point at its centre.
func (c *Canvas) CellCenter(col, row int) entity.Vec2 {
	return entity.Vec2{
		X: (float64(col) + 0.5) * c.cellW,
		Y: (float64(row) + 0.5) * c.cellH,
	}
}

// Cell returns the cell at col,row. Out of range positions yield a zero Cell.
func (c *Canvas) Cell(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

// Clear blanks every cell to bg and drops the clip stack.
func (c *Canvas) Clear(bg port.Color) {
	c.clips = c.clips[:0]
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: bg, BG: bg}
	}
}

func (c *Canvas) grid() cellRect {
	return cellRect{x1: c.cols, y1: c.rows}
}

func (c *Canvas) clip() cellRect {
	if n := len(c.clips); n > 0 {
		return c.clips[n-1]
	}
	return c.grid()
}

// toCells returns every cell the rectangle touches.
func (c *Canvas) toCells(r entity.Rect) cellRect {
	if r.Empty() {
		return cellRect{}
	}
	return cellRect{
		x0: int(math.Floor(r.X / c.cellW)),
		y0: int(math.Floor(r.Y / c.cellH)),
		x1: int(math.Ceil((r.X + r.W) / c.cellW)),
		y1: int(math.Ceil((r.Y + r.H) / c.cellH)),
	}
}

func (c *Canvas) toCell(p entity.Vec2) (col, row int) {
	return int(math.Floor(p.X / c.cellW)), int(math.Floor(p.Y / c.cellH))
}

func (c *Canvas) at(col, row int) *Cell {
	if !c.clip().contains(col, row) {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// DrawRect fills the cells under bounds. Opaque fills erase text,
// translucent fills tint the background and keep it. Rectangles thinner
// than half a cell become block glyphs so indicators stay visible.
func (c *Canvas) DrawRect(bounds entity.Rect, color port.Color) {
	if glyph, ok := c.thinGlyph(bounds); ok {
		c.drawGlyphRect(bounds, glyph, color)
		return
	}

	area := c.toCells(bounds).intersect(c.clip())
	if area.empty() {
		return
	}
	for row := area.y0; row < area.y1; row++ {
		for col := area.x0; col < area.x1; col++ {
			cell := &c.cells[row*c.cols+col]
			if color.A >= 1 {
				*cell = Cell{Rune: ' ', FG: cell.FG, BG: color}
				continue
			}
			cell.BG = blend(cell.BG, color)
		}
	}
}

func (c *Canvas) thinGlyph(bounds entity.Rect) (rune, bool) {
	if bounds.Empty() {
		return 0, false
	}
	switch {
	case bounds.H < c.cellH/2 && bounds.W >= c.cellW:
		centre := bounds.Y + bounds.H/2
		if math.Mod(centre, c.cellH) >= c.cellH/2 {
			return '▁', true
		}
		return '▔', true
	case bounds.W < c.cellW/2 && bounds.H >= c.cellH:
		centre := bounds.X + bounds.W/2
		if math.Mod(centre, c.cellW) >= c.cellW/2 {
			return '▕', true
		}
		return '▏', true
	}
	return 0, false
}

func (c *Canvas) drawGlyphRect(bounds entity.Rect, glyph rune, color port.Color) {
	area := c.toCells(bounds).intersect(c.clip())
	for row := area.y0; row < area.y1; row++ {
		for col := area.x0; col < area.x1; col++ {
			cell := &c.cells[row*c.cols+col]
			cell.Rune = glyph
			cell.FG = blend(cell.BG, color)
		}
	}
}

// DrawRoundedRect fills like DrawRect; cells have no sub-cell corners.
func (c *Canvas) DrawRoundedRect(bounds entity.Rect, color port.Color, _ float64) {
	c.DrawRect(bounds, color)
}

// DrawRoundedRectOutline strokes the outermost cells of bounds with
// rounded box drawing characters.
func (c *Canvas) DrawRoundedRectOutline(bounds entity.Rect, color port.Color, _, _ float64) {
	area := c.toCells(bounds)
	if area.empty() {
		return
	}

	last := cellRect{x0: area.x1 - 1, y0: area.y1 - 1}
	for row := area.y0; row < area.y1; row++ {
		for col := area.x0; col < area.x1; col++ {
			r, ok := outlineRune(area, last, col, row)
			if !ok {
				continue
			}
			c.stroke(col, row, r, color)
		}
	}
}

func outlineRune(area, last cellRect, col, row int) (rune, bool) {
	top, bottom := row == area.y0, row == last.y0
	left, right := col == area.x0, col == last.x0

	switch {
	case top && bottom && left && right:
		return '□', true
	case top && bottom:
		if left {
			return '(', true
		}
		if right {
			return ')', true
		}
		return '─', true
	case left && right:
		return '│', true
	case top && left:
		return '╭', true
	case top && right:
		return '╮', true
	case bottom && left:
		return '╰', true
	case bottom && right:
		return '╯', true
	case top || bottom:
		return '─', true
	case left || right:
		return '│', true
	}
	return 0, false
}

// DrawLine strokes the cells between from and to. Horizontal and vertical
// runs use box drawing characters. Strokes shorter than a cell land in the
// cell under their midpoint, so crossing diagonals like a close glyph
// collapse to ×.
func (c *Canvas) DrawLine(from, to entity.Vec2, color port.Color, _ float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	ax, ay := math.Abs(dx), math.Abs(dy)

	diagonal := '╲'
	if (dx > 0) != (dy > 0) {
		diagonal = '╱'
	}

	if ax < c.cellW && ay < c.cellH {
		col, row := c.toCell(entity.Vec2{X: from.X + dx/2, Y: from.Y + dy/2})
		switch {
		case ay <= ax/2:
			c.stroke(col, row, '─', color)
		case ax <= ay/2:
			c.stroke(col, row, '│', color)
		default:
			c.strokeDiagonal(col, row, diagonal, color)
		}
		return
	}

	c0, r0 := c.toCell(from)
	c1, r1 := c.toCell(to)
	switch {
	case ay <= ax/2:
		for col := min(c0, c1); col <= max(c0, c1); col++ {
			c.stroke(col, r0, '─', color)
		}
		return
	case ax <= ay/2:
		for row := min(r0, r1); row <= max(r0, r1); row++ {
			c.stroke(c0, row, '│', color)
		}
		return
	}

	steps := max(abs(c1-c0), abs(r1-r0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := c0 + int(math.Round(t*float64(c1-c0)))
		row := r0 + int(math.Round(t*float64(r1-r0)))
		c.strokeDiagonal(col, row, diagonal, color)
	}
}

func (c *Canvas) stroke(col, row int, r rune, color port.Color) {
	cell := c.at(col, row)
	if cell == nil {
		return
	}
	cell.Rune = r
	cell.FG = blend(cell.BG, color)
}

func (c *Canvas) strokeDiagonal(col, row int, r rune, color port.Color) {
	cell := c.at(col, row)
	if cell == nil {
		return
	}
	if (cell.Rune == '╲' && r == '╱') || (cell.Rune == '╱' && r == '╲') || cell.Rune == '×' {
		r = '×'
	}
	cell.Rune = r
	cell.FG = blend(cell.BG, color)
}

// PushClip intersects the clip region with the cells under bounds.
func (c *Canvas) PushClip(bounds entity.Rect) {
	c.clips = append(c.clips, c.toCells(bounds).intersect(c.clip()))
}

// PopClip restores the previous clip region. Extra calls are ignored.
func (c *Canvas) PopClip() {
	if n := len(c.clips); n > 0 {
		c.clips = c.clips[:n-1]
	}
}

// DrawTextInBounds writes one line of text into the row selected by vAlign,
// truncated with an ellipsis to the columns bounds covers.
func (c *Canvas) DrawTextInBounds(text string, bounds entity.Rect, color port.Color, hAlign port.HAlign, vAlign port.VAlign) {
	area := c.toCells(bounds)
	if area.empty() || text == "" {
		return
	}

	var row int
	switch vAlign {
	case port.VAlignTop:
		row = area.y0
	case port.VAlignBottom:
		row = area.y1 - 1
	default:
		_, row = c.toCell(bounds.Center())
	}

	width := area.x1 - area.x0
	text = runewidth.Truncate(text, width, "…")
	textWidth := runewidth.StringWidth(text)

	col := area.x0
	switch hAlign {
	case port.HAlignCenter:
		col += (width - textWidth) / 2
	case port.HAlignRight:
		col = area.x1 - textWidth
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.stroke(col, row, r, color)
		if w == 2 {
			if next := c.at(col+1, row); next != nil {
				next.Rune = continuation
			}
		}
		col += w
	}
}

// Plain returns the grid as text without colours.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			if r := c.cells[row*c.cols+col].Rune; r != continuation {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// String returns the grid styled with lipgloss, one line per row. Runs of
// cells sharing colours are rendered together.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var sb strings.Builder
		var run strings.Builder
		var runFG, runBG port.Color

		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := c.renderer.NewStyle().
				Foreground(lipgloss.Color(hex(runFG))).
				Background(lipgloss.Color(hex(runBG)))
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if cell.Rune == continuation {
				continue
			}
			if run.Len() > 0 && (cell.FG != runFG || cell.BG != runBG) {
				flush()
			}
			runFG, runBG = cell.FG, cell.BG
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// blend composites src over an opaque dst with straight alpha.
func blend(dst, src port.Color) port.Color {
	if src.A >= 1 {
		return port.Color{R: src.R, G: src.G, B: src.B, A: 1}
	}
	if src.A <= 0 {
		return dst
	}
	d := colorful.Color{R: dst.R, G: dst.G, B: dst.B}
	s := colorful.Color{R: src.R, G: src.G, B: src.B}
	out := d.BlendRgb(s, src.A).Clamped()
	return port.Color{R: out.R, G: out.G, B: out.B, A: 1}
}

func hex(c port.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
