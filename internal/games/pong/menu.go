package pong

import "github.com/vovakirdan/pixel-arcade/internal/core"

// Mode selects who controls the right paddle.
type Mode int

const (
	ModeTwoPlayers Mode = iota // Both paddles human
	ModeVsComputer             // Right paddle driven by the Controller
)

// String returns the label shown in the HUD.
func (m Mode) String() string {
	if m == ModeVsComputer {
		return "vs Computer"
	}
	return "2 Players"
}

// phase is either menuPhase or playPhase. A menu selection only exists while
// the menu is up, and the opponent is fixed for the whole of play.
type phase interface {
	isPhase()
}

type menuPhase struct {
	selection Mode
}

type playPhase struct {
	opponent Mode
}

func (menuPhase) isPhase() {}
func (playPhase) isPhase() {}

// Menu option labels, in selection order.
var menuOptions = [...]string{
	"1) 2 Players",
	"2) Player vs Computer",
}

// stepMenu handles navigation and confirmation on the start menu.
// Navigation clamps rather than wrapping; digit keys select and confirm at once.
func (g *Game) stepMenu(p menuPhase, in *core.Tracker) {
	sel := int(p.selection)
	if in.AnyPressed(core.KeyUp, core.KeyW) {
		sel--
	}
	if in.AnyPressed(core.KeyDown, core.KeyS) {
		sel++
	}
	sel = core.Clamp(sel, int(ModeTwoPlayers), int(ModeVsComputer))

	if in.Pressed(core.Key1) {
		sel = int(ModeTwoPlayers)
	}
	if in.Pressed(core.Key2) {
		sel = int(ModeVsComputer)
	}

	if in.AnyPressed(core.KeyEnter, core.KeySpace, core.Key1, core.Key2) {
		g.phase = playPhase{opponent: Mode(sel)}
		g.resetGame()
		return
	}
	g.phase = menuPhase{selection: Mode(sel)}
}
