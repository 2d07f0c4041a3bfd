package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
)

// Visual characters for rendering
const (
	RoadEdgeChar = '│'
	DividerChar  = '┆'
	ObstacleChar = '▓'
	PlayerChar   = '█'
	ShieldChar   = '░'
	CoinChar     = 'o'
	SparkleChar  = '*'
	ParticleChar = '·'
	EmberChar    = '•'
)

// hudWidth is the width of the side panel when the terminal is wide enough.
const hudWidth = 26

// View maps world coordinates onto a character screen.
type View struct {
	cfg    config.RunnerConfig
	width  int
	height int
	fieldX int // First column of the playfield
	fieldW int // Playfield width in columns
	hudX   int // First column of the side panel, -1 when the HUD overlays the field
}

// NewView lays out a playfield and HUD for a screen of the given size.
// Terminal cells are about twice as tall as wide, so the field keeps the
// world's aspect ratio at two columns per row unit.
func NewView(cfg config.RunnerConfig, width, height int) View {
	v := View{cfg: cfg, width: width, height: height, hudX: -1}

	ideal := int(math.Round(float64(height) * cfg.World.Width / cfg.World.Height * 2))
	if width >= hudWidth+20 {
		v.fieldW = core.Clamp(ideal, 12, width-hudWidth-1)
		v.fieldX = (width - hudWidth - 1 - v.fieldW) / 2
		v.hudX = width - hudWidth
	} else {
		v.fieldW = core.Clamp(ideal, 1, width)
		v.fieldX = (width - v.fieldW) / 2
	}
	return v
}

// Cell converts a world position to a screen cell.
func (v View) Cell(x, y float64) (int, int) {
	cx := v.fieldX + int(math.Floor(x/v.cfg.World.Width*float64(v.fieldW)))
	cy := int(math.Floor(y / v.cfg.World.Height * float64(v.height)))
	return cx, cy
}

// size converts a world size to a cell size of at least one cell.
func (v View) size(w, h float64) (int, int) {
	cw := int(math.Round(w / v.cfg.World.Width * float64(v.fieldW)))
	ch := int(math.Round(h / v.cfg.World.Height * float64(v.height)))
	return max(cw, 1), max(ch, 1)
}

// Draw renders a snapshot.
func (v View) Draw(dst *core.Screen, s Snapshot, paused bool) {
	dst.Clear()

	// Screen shake jitters the field sideways on alternate frames.
	shift := int(math.Round(s.Ambient.Shake / 4))
	if s.Frame%2 == 1 {
		shift = -shift
	}
	field := v
	field.fieldX += shift

	field.drawRoad(dst, s)
	field.drawCoins(dst, s)
	field.drawPowerUps(dst, s)
	field.drawObstacles(dst, s)
	field.drawPlayer(dst, s)
	field.drawParticles(dst, s)

	if s.Ambient.Flash > 0.2 {
		dst.DrawBox(v.fieldX, 0, v.fieldW, v.height, core.ColorBrightWhite)
	}

	v.drawHUD(dst, s)

	switch {
	case s.Phase == PhaseGameOver:
		lines := []string{
			fmt.Sprintf("Score: %d  Best: %d", s.Stats.Score, s.Stats.HighScore),
			fmt.Sprintf("Coins: %d", s.Stats.Coins),
		}
		if s.Stats.Score > 0 && s.Stats.Score >= s.Stats.HighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "Enter: run again  R/Esc: characters")
		v.drawMessage(dst, "GAME OVER", lines, core.ColorBrightRed)
	case paused:
		v.drawMessage(dst, "PAUSED", []string{"Press P to resume"}, core.ColorBrightYellow)
	}
}

func (v View) drawRoad(dst *core.Screen, s Snapshot) {
	lanes := v.cfg.Lanes
	start := lanes.Start(v.cfg.World.Width)
	rowUnit := v.cfg.World.Height / float64(v.height)
	scroll := int(s.Stats.Distance / rowUnit)

	for k := 0; k <= lanes.Count; k++ {
		x, _ := v.Cell(start+float64(k)*lanes.Width, 0)
		if k == 0 || k == lanes.Count {
			dst.DrawVLine(x, 0, v.height, RoadEdgeChar, core.ColorGray)
			continue
		}
		for row := 0; row < v.height; row++ {
			if (row+scroll)%3 != 0 {
				dst.SetColor(x, row, DividerChar, core.ColorGray)
			}
		}
	}
}

func (v View) drawCoins(dst *core.Screen, s Snapshot) {
	for _, c := range s.Coins {
		bob := math.Sin(float64(s.Frame)*0.1+c.BobOffset) * 3
		x, y := v.Cell(c.X, c.Y+bob)
		r := CoinChar
		if int(c.Sparkle*10)%8 == 0 {
			r = SparkleChar
		}
		dst.SetColor(x, y, r, core.ColorGold)
	}
}

func (v View) drawPowerUps(dst *core.Screen, s Snapshot) {
	for _, pu := range s.PowerUps {
		info := pu.Type.Info()
		bob := math.Sin(float64(s.Frame)*0.08+pu.BobOffset) * 4
		x, y := v.Cell(pu.X, pu.Y+bob)
		dst.SetColor(x, y, info.Symbol, info.Color)
		if math.Sin(pu.Glow*4) > 0 {
			dst.SetColor(x-1, y, '[', info.Color)
			dst.SetColor(x+1, y, ']', info.Color)
		}
	}
}

func (v View) drawObstacles(dst *core.Screen, s Snapshot) {
	for _, o := range s.Obstacles {
		cw, ch := v.size(o.Width, o.Height)
		x, y := v.Cell(o.X-o.Width/2, o.Y-o.Height/2)
		dst.FillRect(x, y, cw, ch, ObstacleChar, o.Character.Color)
		v.drawInitial(dst, x, y, cw, ch, o.Character.Name)
	}
}

func (v View) drawPlayer(dst *core.Screen, s Snapshot) {
	p := s.Player
	top := p.Y - p.Height/2
	height := p.Height
	if p.Sliding {
		top = p.Y + p.Height*v.cfg.Collision.SlideProfile - p.Height/2
		height = p.Height * (1 - v.cfg.Collision.SlideProfile)
	}

	cw, ch := v.size(p.Width, height)
	x, y := v.Cell(p.X-p.Width/2, top)

	r := PlayerChar
	if p.Invincible && s.Frame%8 < 4 {
		r = ShieldChar
	}
	dst.FillRect(x, y, cw, ch, r, s.Character.Color)
	v.drawInitial(dst, x, y, cw, ch, s.Character.Name)
}

func (v View) drawParticles(dst *core.Screen, s Snapshot) {
	for _, p := range s.Particles {
		x, y := v.Cell(p.X, p.Y)
		r := ParticleChar
		if p.Size > 4 && p.Fade() > 0.5 {
			r = EmberChar
		}
		dst.SetColor(x, y, r, p.Color)
	}
}

// drawInitial writes the first letter of a name in the middle of a block.
func (v View) drawInitial(dst *core.Screen, x, y, w, h int, name string) {
	if name == "" || w < 1 || h < 1 {
		return
	}
	r := []rune(name)[0]
	cell := dst.GetCell(x+w/2, y+h/2)
	dst.SetColor(x+w/2, y+h/2, r, cell.Color)
}

type hudLine struct {
	text  string
	color core.Color
}

func (v View) drawHUD(dst *core.Screen, s Snapshot) {
	lines := []hudLine{
		{"NEATZA RUNNERS", core.ColorBrightYellow},
		{"Runner " + s.Character.Name, s.Character.Color},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score  %d", s.Stats.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Best   %d", s.Stats.HighScore), core.ColorWhite},
		{fmt.Sprintf("Coins  %d (%d)", s.Stats.Coins, s.Stats.TotalCoins), core.ColorGold},
		{fmt.Sprintf("Speed  %.1f", s.Speed), core.ColorCyan},
		{fmt.Sprintf("Dist   %.0fm", s.Stats.Distance/10), core.ColorCyan},
	}

	if s.Active.Active() {
		info := s.Active.Type.Info()
		lines = append(lines,
			hudLine{"", core.ColorDefault},
			hudLine{info.Name, info.Color},
			hudLine{powerUpBar(s.Active.Fraction(), hudWidth-4), info.Color},
		)
	}

	if v.hudX < 0 {
		// Narrow terminal: one line across the top.
		dst.DrawTextColor(0, 0, fmt.Sprintf("%d  $%d", s.Stats.Score, s.Stats.Coins), core.ColorBrightWhite)
		if s.Active.Active() {
			info := s.Active.Type.Info()
			dst.DrawTextColor(0, 1, info.Name, info.Color)
		}
		return
	}

	for i, l := range lines {
		dst.DrawTextColor(v.hudX, 1+i, l.text, l.color)
	}

	help := []string{"←/→ lane", "↑ jump  ↓ slide", "P pause  Q quit"}
	for i, h := range help {
		dst.DrawTextColor(v.hudX, v.height-len(help)-1+i, h, core.ColorGray)
	}
}

// powerUpBar renders the remaining share of a power-up as a bar.
func powerUpBar(fraction float64, width int) string {
	filled := int(math.Round(fraction * float64(width)))
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// drawMessage draws a message box in the center of the playfield.
func (v View) drawMessage(dst *core.Screen, title string, lines []string, c core.Color) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := v.fieldX + (v.fieldW-boxW)/2
	boxY := (v.height - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextColor(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorWhite)
	}
}
