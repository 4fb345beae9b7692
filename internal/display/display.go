// internal/display/display.go
//
// Human-readable feedback rendering. This is an observational side channel:
// nothing in the engine or the bot reads what is written here.
//
// Two renderings of a scored guess:
//   - plain:  the literal character if in the correct place, `*` if the
//     character is elsewhere in the word, `?` if absent.
//   - color:  Wordle-style tiles via lipgloss (green/yellow/gray).

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wordybot/wordy/internal/game"
)

var (
	hitStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	nearStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3"))
	missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("8"))
)

// Console writes round-by-round output to Out. It implements game.Reporter.
type Console struct {
	Out   io.Writer
	Color bool
}

// NewConsole constructs a Console reporter.
func NewConsole(out io.Writer, color bool) *Console {
	return &Console{Out: out, Color: color}
}

// Round prints one evaluated guess.
func (c *Console) Round(round int, guess string, fb game.Feedback) {
	line := PlainLine(fb)
	if c.Color {
		line = colorLine(fb)
	}
	fmt.Fprintf(c.Out, "guess %d: %s  %s\n", round, guess, line)
}

// Outcome prints the terminal state of a game.
func (c *Console) Outcome(res game.Result) {
	switch res.Status {
	case game.StatusWon:
		fmt.Fprintf(c.Out, "found the target word %s in %d guesses\n", res.Target, res.Rounds)
	case game.StatusExhausted:
		fmt.Fprintf(c.Out, "out of guesses; the target word was %s\n", res.Target)
	case game.StatusAborted:
		fmt.Fprintf(c.Out, "game aborted: %v\n", res.Err)
	}
}

// PlainLine renders feedback as character / `*` / `?` per position.
func PlainLine(fb game.Feedback) string {
	var b strings.Builder
	for _, l := range fb.Letters {
		switch {
		case l.InCorrectPlace:
			b.WriteByte(l.Char)
		case l.InWord:
			b.WriteByte('*')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// colorLine renders feedback as colored tiles.
func colorLine(fb game.Feedback) string {
	var b strings.Builder
	for _, l := range fb.Letters {
		s := string(l.Char)
		switch {
		case l.InCorrectPlace:
			b.WriteString(hitStyle.Render(s))
		case l.InWord:
			b.WriteString(nearStyle.Render(s))
		default:
			b.WriteString(missStyle.Render(s))
		}
	}
	return b.String()
}
