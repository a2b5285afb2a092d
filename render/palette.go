package render

import "github.com/gdamore/tcell/v2"

// Palette holds the styles used to draw a lab
type Palette struct {
	Ground   tcell.Style
	Obstacle tcell.Style
	Trail    tcell.Style
	Loop     tcell.Style
	Probe    tcell.Style
	Guard    tcell.Style
	Status   tcell.Style
}

// RGB colors for the default palette (Tokyo Night background)
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbGround     = tcell.NewRGBColor(86, 95, 137)
	RgbObstacle   = tcell.NewRGBColor(192, 202, 245)
	RgbTrail      = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbLoop       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbProbe      = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbGuard      = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
)

// DefaultPalette returns the true-color palette used by the viewer
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Palette{
		Ground:   base.Foreground(RgbGround),
		Obstacle: base.Foreground(RgbObstacle).Bold(true),
		Trail:    base.Foreground(RgbTrail),
		Loop:     base.Foreground(RgbLoop).Bold(true),
		Probe:    base.Foreground(RgbProbe).Bold(true).Reverse(true),
		Guard:    base.Foreground(RgbGuard).Bold(true),
		Status:   tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg),
	}
}
