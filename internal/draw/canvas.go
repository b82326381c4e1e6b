package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// cell is what one terminal cell shows: two stacked sub-pixels.
type cell struct {
	top, bot       RGB
	hasTop, hasBot bool
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing takes world coordinates around a camera,
// with +Y pointing up. Only cells that changed since the last Render are
// written.
type Canvas struct {
	cols, rows int
	subRows    int // rows * 2
	pixels     []RGB
	set        []bool

	halfHeight float64 // World units from the centre to the top edge
	scale      float64 // Sub-pixels per world unit
	camX, camY float64

	// Offset for centering the render area when the terminal is larger than
	// the max resolution. 0-based columns/rows to skip.
	offsetCol int
	offsetRow int

	prev      []cell // Last rendered frame
	dirty     []bool // Cells overwritten by text since the last render
	renderBuf []byte
}

// NewCanvas creates a canvas of cols x rows terminal cells showing halfHeight
// world units above and below the camera.
func NewCanvas(cols, rows int, halfHeight float64) *Canvas {
	c := &Canvas{halfHeight: halfHeight}
	c.Resize(cols, rows)
	return c
}

// Resize updates the canvas for new terminal dimensions, keeping the visible
// world height.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cols = cols
		c.rows = rows
		c.subRows = rows * 2
		c.pixels = make([]RGB, c.subRows*cols)
		c.set = make([]bool, c.subRows*cols)
		c.prev = make([]cell, rows*cols)
		c.dirty = make([]bool, rows*cols)
		c.ForceRedraw()
	}
	c.scale = float64(c.subRows) / (2 * c.halfHeight)
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.rows }

// SetCamera centres the view on (x,y).
func (c *Canvas) SetCamera(x, y float64) {
	c.camX = x
	c.camY = y
}

// Extents returns the visible half-width and half-height in world units.
func (c *Canvas) Extents() (halfWidth, halfHeight float64) {
	return float64(c.cols) / (2 * c.scale), c.halfHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.set)
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// MarkTextDirty marks n cells starting at the 1-based (col,row) as overwritten
// by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.rows {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.cols); x++ {
		c.dirty[r*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	px := (x-c.camX)*c.scale + float64(c.cols)/2
	py := float64(c.subRows)/2 - (y-c.camY)*c.scale
	return int(math.Floor(px)), int(math.Floor(py))
}

func (c *Canvas) setPixel(x, y int, col RGB) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		i := y*c.cols + x
		c.pixels[i] = col
		c.set[i] = true
	}
}

// Dot sets the single pixel under (x,y).
func (c *Canvas) Dot(x, y float64, col RGB) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, col)
}

// Line draws a line between two world points using Bresenham's algorithm.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col RGB) {
	px1, py1 := c.toPixel(x1, y1)
	px2, py2 := c.toPixel(x2, y2)

	dx := abs(px2 - px1)
	dy := abs(py2 - py1)
	sx := 1
	if px1 > px2 {
		sx = -1
	}
	sy := 1
	if py1 > py2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(px1, py1, col)
		if px1 == px2 && py1 == py2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			px1 += sx
		}
		if e2 < dx {
			err += dx
			py1 += sy
		}
	}
}

// Circle draws the outline of a circle of world radius r.
func (c *Canvas) Circle(x, y, r float64, col RGB) {
	rp := r * c.scale
	if rp < 1 {
		c.Dot(x, y, col)
		return
	}
	steps := max(8, int(2*math.Pi*rp))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Dot(x+r*math.Cos(a), y+r*math.Sin(a), col)
	}
}

// Disc fills a circle of world radius r. Tiny discs still cover one pixel.
func (c *Canvas) Disc(x, y, r float64, col RGB) {
	rp := r * c.scale
	cx := (x-c.camX)*c.scale + float64(c.cols)/2
	cy := float64(c.subRows)/2 - (y-c.camY)*c.scale
	if rp < 0.75 {
		c.setPixel(int(math.Floor(cx)), int(math.Floor(cy)), col)
		return
	}
	x0 := max(int(math.Floor(cx-rp)), 0)
	x1 := min(int(math.Ceil(cx+rp)), c.cols-1)
	y0 := max(int(math.Floor(cy-rp)), 0)
	y1 := min(int(math.Ceil(cy+rp)), c.subRows-1)
	r2 := rp * rp
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.setPixel(px, py, col)
			}
		}
	}
}

// WorldToTerminal converts a world point to the 1-based terminal (col,row)
// inside the canvas, for placing text overlays.
func (c *Canvas) WorldToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// Render writes every changed cell to w using half-block characters and
// 24-bit colour escapes.
func (c *Canvas) Render(w io.Writer) {
	buf := c.renderBuf[:0]

	for row := 0; row < c.rows; row++ {
		topOff := row * 2 * c.cols
		botOff := topOff + c.cols
		for col := 0; col < c.cols; col++ {
			cur := cell{hasTop: c.set[topOff+col], hasBot: c.set[botOff+col]}
			if cur.hasTop {
				cur.top = c.pixels[topOff+col]
			}
			if cur.hasBot {
				cur.bot = c.pixels[botOff+col]
			}

			i := row*c.cols + col
			if cur == c.prev[i] && !c.dirty[i] {
				continue
			}
			c.prev[i] = cur
			c.dirty[i] = false

			buf = appendCursor(buf, row+1+c.offsetRow, col+1+c.offsetCol)
			buf = appendCell(buf, cur)
		}
	}

	if len(buf) > 0 {
		buf = append(buf, ColorReset...)
		_, _ = w.Write(buf)
	}
	c.renderBuf = buf
}

func appendCell(buf []byte, cur cell) []byte {
	switch {
	case cur.hasTop && cur.hasBot && cur.top == cur.bot:
		buf = appendSGR(buf, "0;38", cur.top)
		return append(buf, string(BlockFull)...)
	case cur.hasTop && cur.hasBot:
		buf = appendSGR(buf, "0;38", cur.top)
		buf = appendSGR(buf, "48", cur.bot)
		return append(buf, string(BlockUpperHalf)...)
	case cur.hasTop:
		buf = appendSGR(buf, "0;38", cur.top)
		return append(buf, string(BlockUpperHalf)...)
	case cur.hasBot:
		buf = appendSGR(buf, "0;38", cur.bot)
		return append(buf, string(BlockLowerHalf)...)
	default:
		buf = append(buf, ColorReset...)
		return append(buf, ' ')
	}
}

// appendSGR appends a 24-bit colour escape; layer is "38" for foreground or
// "48" for background, optionally prefixed with a reset.
func appendSGR(buf []byte, layer string, col RGB) []byte {
	buf = append(buf, "\033["...)
	buf = append(buf, layer...)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendUint(buf, uint64(col.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(col.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(col.B), 10)
	return append(buf, 'm')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1
	bar := strings.Repeat("─", c.cols)

	var sb strings.Builder
	if hasV {
		if hasH {
			sb.WriteString(cursorTo(top, left) + "┌" + bar + "┐")
			sb.WriteString(cursorTo(bottom, left) + "└" + bar + "┘")
		} else {
			sb.WriteString(cursorTo(top, c.offsetCol+1) + bar)
			sb.WriteString(cursorTo(bottom, c.offsetCol+1) + bar)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			sb.WriteString(cursorTo(row, left) + "│" + cursorTo(row, right) + "│")
		}
	}
	_, _ = io.WriteString(w, sb.String())
}

func cursorTo(row, col int) string {
	return string(appendCursor(nil, row, col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
