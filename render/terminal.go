package render

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws the cached chunk surfaces around a centre cell
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders a cols x rows window of cells centred on center.
// Cells whose chunk has no surface are drawn empty.
func (r *TerminalRenderer) Display(cache *ChunkCache, center model.Cell, cols, rows int) {
	var (
		sb   strings.Builder
		left = center.X - cols/2
		top  = center.Y - rows/2
	)
	for y := top; y < top+rows; y++ {
		for x := left; x < left+cols; x++ {
			if surfaceAlive(cache, x, y) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out(), sb.String())
}

func surfaceAlive(cache *ChunkCache, x, y int) bool {
	key := model.ChunkKeyOf(x, y)
	s, ok := cache.Surface(key)
	if !ok {
		return false
	}
	origin, _ := model.ChunkBounds(key)
	return s.At(x-origin.X, y-origin.Y)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
