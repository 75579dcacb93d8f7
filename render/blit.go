package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vashkar/lightdrift/vmath"
)

func clamp8(v float64) int32 {
	if v >= 1 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return int32(v * 255)
}

func cellColor(c vmath.Vec3) tcell.Color {
	return tcell.NewRGBColor(clamp8(c.X), clamp8(c.Y), clamp8(c.Z))
}

// Blit pushes the framebuffer onto the terminal, two vertical pixels per
// cell through the upper half block: foreground paints the upper pixel,
// background the lower
func Blit(screen tcell.Screen, fb *Framebuffer) {
	rows := fb.H / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < fb.W; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(fb.At(x, row*2))).
				Background(cellColor(fb.At(x, row*2+1)))
			screen.SetContent(x, row, '▀', nil, style)
		}
	}
}

// DrawHUD overlays the status line: speed ratio, capture state, frame rate.
// Drawn after Blit so it always wins the top row
func DrawHUD(screen tcell.Screen, width int, beta float64, locked bool, fps float64) {
	state := "unlocked · click or Enter to capture"
	if locked {
		state = "locked · Esc releases"
	}
	text := fmt.Sprintf(" β %.2f · %s · wasd move · [ ] speed · %3.0f fps ", beta, state, fps)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(20, 20, 40))
	for i, r := range []rune(text) {
		if i >= width {
			break
		}
		screen.SetContent(i, 0, r, nil, style)
	}
}
