package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/input"
)

// Prompter asks questions on the terminal and keeps asking until the answer parses
type Prompter struct {
	reader   *bufio.Reader
	renderer *Renderer

	startOnce sync.Once
	lines     chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewPrompter creates a Prompter reading answers from in
func NewPrompter(in io.Reader, renderer *Renderer) *Prompter {
	return &Prompter{
		reader:   bufio.NewReader(in),
		renderer: renderer,
		lines:    make(chan lineResult),
	}
}

// scan feeds lines to readLine until the input fails.
// It runs on its own goroutine so a blocked read never outlives a cancelled context.
func (p *Prompter) scan() {
	defer close(p.lines)
	for {
		text, err := p.reader.ReadString('\n')
		if text != "" {
			p.lines <- lineResult{text: text}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			err = model.ErrInputClosed
		} else {
			err = fmt.Errorf("read input: %w", err)
		}
		p.lines <- lineResult{err: err}
		return
	}
}

// readLine prints the question and returns one line without its line ending
func (p *Prompter) readLine(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.renderer.Printf("%s", question)
	p.startOnce.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", model.ErrInputClosed
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimRight(res.text, "\r\n"), nil
	}
}

// ask repeats question until parse accepts the answer
func ask[T any](ctx context.Context, p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.readLine(ctx, question)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, model.ErrInvalidInput) {
			var zero T
			return zero, err
		}

		if errors.Is(err, model.ErrDuplicateName) {
			p.renderer.DuplicateName()
		} else {
			p.renderer.TryAgain()
		}
	}
}

// AskPlayerName asks player 1 for their name
func (p *Prompter) AskPlayerName(ctx context.Context) (string, error) {
	return ask(ctx, p, "\nHello there! What's your first name? ", input.ParseName)
}

// AskOpponentName asks for the second human's name, which must differ from taken
func (p *Prompter) AskOpponentName(ctx context.Context, taken string) (string, error) {
	return ask(ctx, p, "\nWhat's your opponent's first name? ", func(raw string) (string, error) {
		return input.ParseDistinctName(raw, taken)
	})
}

// AskMarker asks player 1 to pick X or O
func (p *Prompter) AskMarker(ctx context.Context, player1Name string) (model.Marker, error) {
	r := p.renderer
	question := fmt.Sprintf("\nHey %s, choose between the markers [%s] or [%s]: ",
		r.Paint(model.ColorPlayer1, player1Name),
		r.Paint(model.ColorGame, string(model.MarkerX)),
		r.Paint(model.ColorGame, string(model.MarkerO)))
	return ask(ctx, p, question, input.ParseMarker)
}

// AskOpponent asks whether to play the computer or another human
func (p *Prompter) AskOpponent(ctx context.Context) (model.OpponentKind, error) {
	r := p.renderer
	question := fmt.Sprintf("Do you want to play vs a [%s]omputer or another [%s]uman? ",
		r.Paint(model.ColorGame, string(model.OpponentComputer)),
		r.Paint(model.ColorGame, string(model.OpponentHuman)))
	return ask(ctx, p, question, input.ParseOpponent)
}

// ChooseMove asks a human player for a legal row,col
func (p *Prompter) ChooseMove(ctx context.Context, player *model.Player, available []model.Position) (model.Position, error) {
	r := p.renderer
	question := fmt.Sprintf("\n%s, it's your turn. Input move [%s,%s]: ",
		r.PlayerLabel(player),
		r.Paint(model.ColorGame, "row"),
		r.Paint(model.ColorGame, "col"))
	return ask(ctx, p, question, func(raw string) (model.Position, error) {
		return input.ParseAvailableMove(raw, available)
	})
}

// AskAction asks what to do after a round
func (p *Prompter) AskAction(ctx context.Context) (model.Action, error) {
	r := p.renderer
	question := fmt.Sprintf("\n[%s]ontinue Game / [%s]eset Game / [%s]uit Game ? ",
		r.Paint(model.ColorGame, "C"),
		r.Paint(model.ColorGame, "R"),
		r.Paint(model.ColorGame, "Q"))
	return ask(ctx, p, question, input.ParseAction)
}
