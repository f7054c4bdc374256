package screens

import (
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Classic 2048 colours.
const (
	ColorScreen    core.Color = "#FAF8EF"
	ColorBoard     core.Color = "#BAADA1"
	ColorCell      core.Color = "#CCC1B5"
	ColorButton    core.Color = "#A4937F"
	ColorTextDark  core.Color = "#776E66"
	ColorTextLight core.Color = "#F9F6F2"
)

// tileColors is indexed by rank; ranks past the end reuse the last colour.
var tileColors = [...]core.Color{
	1:  "#EEE4DA", // 2
	2:  "#EDE0C8", // 4
	3:  "#F2B179", // 8
	4:  "#F59563", // 16
	5:  "#F67C5F", // 32
	6:  "#F65E3B", // 64
	7:  "#EDCF72", // 128
	8:  "#EDCC61", // 256
	9:  "#EDC850", // 512
	10: "#EDC53F", // 1024
	11: "#EDC22E", // 2048
	12: "#ED702E", // 4096
	13: "#ED4C2E", // 8192
}

// TileColor returns the background colour of a tile.
func TileColor(rank int) core.Color {
	switch {
	case rank <= 0:
		return ColorCell
	case rank >= len(tileColors):
		return tileColors[len(tileColors)-1]
	}
	return tileColors[rank]
}

// TileStyle returns the style a tile of the given rank is drawn with.
// The two lightest tiles use dark text.
func TileStyle(rank int) core.Style {
	fg := ColorTextLight
	if rank <= 2 {
		fg = ColorTextDark
	}
	return core.Style{FG: fg, BG: TileColor(rank), Bold: true}
}

// TileLabel returns the number shown on a tile.
func TileLabel(rank int) string {
	if rank <= 0 {
		return ""
	}
	return strconv.Itoa(t2048.Number(rank))
}

var (
	styleScreen   = core.Style{FG: ColorTextDark, BG: ColorScreen}
	styleTitle    = core.Style{FG: ColorTextLight, BG: TileColor(t2048.DefaultWinRank), Bold: true}
	styleLabel    = core.Style{FG: ColorCell, BG: ColorButton}
	styleValue    = core.Style{FG: ColorTextLight, BG: ColorButton, Bold: true}
	styleItem     = core.Style{FG: ColorTextDark, BG: ColorScreen}
	styleSelected = core.Style{FG: ColorTextLight, BG: ColorButton, Bold: true}
	styleDialog   = core.Style{FG: ColorTextDark, BG: ColorScreen}
	styleBorder   = core.Style{FG: ColorButton, BG: ColorScreen}
	styleHint     = core.Style{FG: ColorTextDark, BG: ColorScreen, Faint: true}
)
