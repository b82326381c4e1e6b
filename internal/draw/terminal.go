// Package draw renders frames and text to ANSI terminals.
package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once. It stays under a typical
// MTU for smooth SSH transmission.
const maxChunkSize = 1400

const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// ChunkWriter collects one frame of terminal output (canvas cells, HUD text,
// clears) and sends it in MTU-sized chunks on Flush. Text positions are
// 1-based canvas coordinates; the render offset is applied automatically.
type ChunkWriter struct {
	buf     strings.Builder
	bufw    *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	scratch []byte        // Reused for allocation-free escape formatting
	offCol  int
	offRow  int
}

// NewChunkWriter creates a ChunkWriter that writes to w with the canvas placed
// at the given terminal offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the canvas offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// moveCursor queues a cursor move to a canvas position.
func (cw *ChunkWriter) moveCursor(col, row int) {
	cw.scratch = appendCursor(cw.scratch[:0], row+cw.offRow, col+cw.offCol)
	cw.buf.Write(cw.scratch)
}

// Write implements io.Writer so Canvas.Render can draw into the frame.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// Clear queues a full terminal clear, used on screen changes and resizes.
func (cw *ChunkWriter) Clear() {
	cw.buf.WriteString(seqClear)
}

// Text queues s at a canvas position in the terminal's default colour.
func (cw *ChunkWriter) Text(col, row int, s string) {
	cw.StyledText(col, row, "", s)
}

// StyledText queues s at a canvas position wrapped in an SGR style such as
// ColorBold or ColorRed. An empty style writes plain text.
func (cw *ChunkWriter) StyledText(col, row int, style, s string) {
	cw.moveCursor(col, row)
	if style == "" {
		cw.buf.WriteString(s)
		return
	}
	cw.buf.WriteString(style)
	cw.buf.WriteString(s)
	cw.buf.WriteString(ColorReset)
}

// ColorText queues s at a canvas position in a 24-bit foreground colour.
func (cw *ChunkWriter) ColorText(col, row int, c RGB, s string) {
	cw.moveCursor(col, row)
	cw.scratch = appendSGR(cw.scratch[:0], "38", c)
	cw.buf.Write(cw.scratch)
	cw.buf.WriteString(s)
	cw.buf.WriteString(ColorReset)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the queued frame to the underlying writer in chunks, then
// resets the queue.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	_, _ = io.WriteString(w, seqClear)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	_, _ = io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	_, _ = io.WriteString(w, seqShowCursor)
}

// appendCursor appends a 1-based cursor position sequence.
func appendCursor(buf []byte, row, col int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}
