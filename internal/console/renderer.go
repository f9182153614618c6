package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/mcoot/tictactoe/internal/model"
)

const titleBanner = `
    █████ █ ████    █████  ███  ████   █████ █████ █████
      █   █ █         █   █   █ █        █   █   █ █
      █   █ █    █    █   █████ █    █   █   █   █ ███
      █   █ █         █   █   █ █        █   █   █ █
      █   █ ████      █   █   █ ████     █   █████ █████
`

// palette maps entity colours to ANSI codes: light blue, light green, light magenta
var palette = map[model.Color]string{
	model.ColorGame:    "12",
	model.ColorPlayer1: "10",
	model.ColorPlayer2: "13",
}

// Options controls terminal rendering
type Options struct {
	Color       bool
	ClearScreen bool
}

// Renderer draws the game to a terminal
type Renderer struct {
	w     io.Writer
	out   *termenv.Output
	clear bool
}

// NewRenderer creates a Renderer writing to w
func NewRenderer(w io.Writer, opts Options) *Renderer {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ANSI
	}
	return &Renderer{
		w:     w,
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		clear: opts.ClearScreen,
	}
}

// Paint colours s with the entity's colour
func (r *Renderer) Paint(color model.Color, s string) string {
	code, ok := palette[color]
	if !ok {
		return s
	}
	return r.out.String(s).Foreground(r.out.Color(code)).String()
}

// PlayerName returns the name in the player's colour
func (r *Renderer) PlayerName(p *model.Player) string {
	return r.Paint(p.Color, p.Name)
}

// PlayerLabel returns "Name (X)" with the marker in the player's colour
func (r *Renderer) PlayerLabel(p *model.Player) string {
	return fmt.Sprintf("%s (%s)", p.Name, r.Paint(p.Color, string(p.Marker)))
}

// Println writes a line
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.w, a...)
}

// Printf writes formatted text
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.w, format, a...)
}

// Clear wipes the screen when clearing is enabled
func (r *Renderer) Clear() {
	if r.clear {
		r.out.ClearScreen()
	}
}

// Title prints the banner
func (r *Renderer) Title() {
	r.Println(r.Paint(model.ColorGame, titleBanner))
}

// Scoreboard prints both players' wins and the draw count
func (r *Renderer) Scoreboard(session *model.Session) {
	if session.Player1 == nil || session.Player2 == nil {
		return
	}
	r.Printf("\n\n")
	r.Println(r.Paint(model.ColorGame, "SCORES"))
	r.Printf("%s = %d\n", r.PlayerLabel(session.Player1), session.Scores.Player1Wins)
	r.Printf("%s = %d\n", r.PlayerLabel(session.Player2), session.Scores.Player2Wins)
	r.Printf("Draw = %d\n", session.Scores.Draws)
	r.Printf("\n\n")
}

// Board prints the grid with row and column indexes and the round number
func (r *Renderer) Board(session *model.Session) {
	var sb strings.Builder

	headers := make([]string, model.BoardSize)
	for col := range headers {
		headers[col] = strconv.Itoa(col)
	}
	fmt.Fprintf(&sb, "     %s \n", strings.Join(headers, "   "))
	sb.WriteString("    -----------\n")

	for row := 0; row < model.BoardSize; row++ {
		if row > 0 {
			sb.WriteString("    ---+---+---\n")
		}
		cells := make([]string, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			cells[col] = r.cell(session, session.Board.Get(model.Position{Row: row, Col: col}))
		}
		fmt.Fprintf(&sb, " %d | %s |\n", row, strings.Join(cells, " | "))
	}

	sb.WriteString("    -----------\n")
	fmt.Fprintf(&sb, "%s #%d\n", r.Paint(model.ColorGame, "     ROUND"), session.Round)

	r.Println(sb.String())
}

func (r *Renderer) cell(session *model.Session, marker model.Marker) string {
	if marker == model.MarkerNone {
		return " "
	}
	if owner := session.PlayerByMarker(marker); owner != nil {
		return r.Paint(owner.Color, string(marker))
	}
	return string(marker)
}

// Repaint clears the screen and redraws title, scores and board
func (r *Renderer) Repaint(session *model.Session) {
	r.Clear()
	r.Title()
	r.Scoreboard(session)
	r.Board(session)
}

// TryAgain prints the generic retry message
func (r *Renderer) TryAgain() {
	r.Printf("Try again!\n\n")
}

// DuplicateName prints the retry message for a name clash
func (r *Renderer) DuplicateName() {
	r.Println("Sorry! Please try a different name.")
}

// MarkerChosen confirms player 1's marker
func (r *Renderer) MarkerChosen(marker model.Marker) {
	r.Printf("\nYour chosen marker is %s. This will not affect who gets the first turn in the game.\n",
		r.Paint(model.ColorPlayer1, string(marker)))
	r.Printf("The first player to make a move will be chosen randomly!\n\n")
}

// Matchup announces the two players and who moves first
func (r *Renderer) Matchup(session *model.Session) {
	r.Printf("\nIt's %s vs %s. Let's play Tic-Tac-Toe!!\n\n",
		r.PlayerName(session.Player1), r.PlayerName(session.Player2))
	if first := session.FirstPlayer(); first != nil {
		r.Printf("%s will play first!\n\n", r.PlayerName(first))
	}
}

// Countdown prints the pre-game countdown line
func (r *Renderer) Countdown() {
	r.Println("The game will begin in 3.. 2.. 1..")
}

// Winner announces the round winner
func (r *Renderer) Winner(p *model.Player) {
	r.Printf("!!! %s WON !!!\n", r.PlayerName(p))
}

// Draw announces a drawn round
func (r *Renderer) Draw() {
	r.Printf("\nIT'S A DRAW!!!\n")
}

// Farewell prints the closing banner and a line per completed round
func (r *Renderer) Farewell(history []model.RoundSummary) {
	if len(history) > 0 {
		r.Printf("\n%s\n", r.Paint(model.ColorGame, "ROUNDS"))
		for _, h := range history {
			if h.Outcome == model.OutcomeWin {
				r.Printf("#%d %s won\n", h.Round, h.Winner)
			} else {
				r.Printf("#%d draw\n", h.Round)
			}
		}
	}
	r.Printf("\nX X  %s  X X\n", r.Paint(model.ColorGame, "GAME OVER!"))
	r.Printf("\nThanks for playing!\n")
}
