// Package render draws the game screens as styled strings.
//
// A Renderer is bound to one writer so that lipgloss picks the colour profile
// of that writer. Rendering functions return strings; only Clear writes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/samber/lo"

	"termludo/internal/types"
)

const (
	bannerWidth = 39
	boardIndent = 10
	title       = "WORDLE"
)

// Palette holds the tile background for each verdict.
var Palette = map[types.Verdict]lipgloss.Color{
	types.Correct: lipgloss.Color("#538d4e"),
	types.Present: lipgloss.Color("#b59f3b"),
	types.Absent:  lipgloss.Color("#3a3a3c"),
	types.Unknown: lipgloss.Color("#121213"),
}

type keyRow struct {
	keys   string
	indent int
}

var keyboardRows = []keyRow{
	{"QWERTYUIOP", 0},
	{"ASDFGHJKL", 2},
	{"ZXCVBNM", 6},
}

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// KeyStatus reports the aggregate verdict of a keyboard letter.
type KeyStatus interface {
	StatusOf(letter rune) types.Verdict
}

// Renderer renders screens for a single output stream.
type Renderer struct {
	out   io.Writer
	lg    *lipgloss.Renderer
	clear bool

	tiles        map[types.Verdict]lipgloss.Style
	bannerStyle  lipgloss.Style
	headerStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor forces colour on or off. Without it the profile is detected
// from the writer.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.lg.SetColorProfile(termenv.TrueColor)
		} else {
			r.lg.SetColorProfile(termenv.Ascii)
		}
	}
}

// WithClear controls whether Clear emits the erase-screen sequence.
func WithClear(enabled bool) Option {
	return func(r *Renderer) {
		r.clear = enabled
	}
}

// New returns a Renderer for out. Screen clearing is on unless WithClear
// turns it off.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:   out,
		lg:    lipgloss.NewRenderer(out),
		clear: true,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.tiles = make(map[types.Verdict]lipgloss.Style, len(Palette))
	for v, bg := range Palette {
		r.tiles[v] = r.lg.NewStyle().Background(bg).Foreground(lipgloss.Color("#ffffff"))
	}
	r.bannerStyle = r.lg.NewStyle().
		Border(asciiBorder).
		Width(bannerWidth).
		Align(lipgloss.Center).
		Bold(true)
	r.headerStyle = r.lg.NewStyle().Bold(true)
	r.errorStyle = r.lg.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	r.successStyle = r.lg.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	r.infoStyle = r.lg.NewStyle().Foreground(lipgloss.Color("14"))
	return r
}

// Clear wipes the terminal and homes the cursor.
func (r *Renderer) Clear() {
	if !r.clear {
		return
	}
	fmt.Fprint(r.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
}

// Banner is the bordered title shown above the board.
func (r *Renderer) Banner() string {
	return r.bannerStyle.Render(title)
}

// Row draws text as a strip of boxed tiles coloured by states. Positions
// without a state are drawn as Unknown.
func (r *Renderer) Row(text string, states []types.Verdict) string {
	letters := []rune(text)
	edge := strings.Repeat("+---", len(letters)) + "+"

	var b strings.Builder
	b.WriteString(edge)
	b.WriteByte('\n')
	for i, ch := range letters {
		v := types.Unknown
		if i < len(states) {
			v = states[i]
		}
		b.WriteByte('|')
		b.WriteString(r.tiles[v].Render(" " + string(ch) + " "))
	}
	b.WriteString("|\n")
	b.WriteString(edge)
	return b.String()
}

// Board draws every guess followed by blank rows up to maxAttempts.
func (r *Renderer) Board(guesses []types.Guess, maxAttempts int) string {
	rows := lo.Map(guesses, func(g types.Guess, _ int) string {
		return indent(r.Row(g.Text, g.States[:]), boardIndent)
	})
	blank := strings.Repeat(" ", types.WordLength)
	rows = append(rows, lo.Times(max(maxAttempts-len(guesses), 0), func(_ int) string {
		return indent(r.Row(blank, nil), boardIndent)
	})...)
	return strings.Join(rows, "\n")
}

// Keyboard draws the QWERTY layout coloured by aggregate letter status.
func (r *Renderer) Keyboard(keys KeyStatus) string {
	rows := lo.Map(keyboardRows, func(row keyRow, _ int) string {
		states := lo.Map([]rune(row.keys), func(ch rune, _ int) types.Verdict {
			return keys.StatusOf(ch)
		})
		return indent(r.Row(row.keys, states), row.indent)
	})
	return strings.Join(rows, "\n")
}

// Screen is the full in-game view: banner, board and keyboard.
func (r *Renderer) Screen(guesses []types.Guess, maxAttempts int, keys KeyStatus) string {
	return strings.Join([]string{
		r.Banner(),
		r.Board(guesses, maxAttempts),
		r.Keyboard(keys),
	}, "\n") + "\n"
}

// Menu is the main menu with a versioned, underlined header.
func (r *Renderer) Menu(version string) string {
	header := "Wordle v" + version
	return strings.Join([]string{
		r.headerStyle.Render(header),
		strings.Repeat("=", len(header)),
		"1. Play The Game.",
		"2. How To Play.",
		"3. Exit.",
	}, "\n") + "\n"
}

// Tutorial explains the rules with three example rows.
func (r *Renderer) Tutorial(maxAttempts int) string {
	example := func(word string, pos int, v types.Verdict) string {
		states := make([]types.Verdict, len(word))
		states[pos] = v
		return r.Row(word, states)
	}

	lines := []string{
		r.headerStyle.Render("HOW TO PLAY"),
		"===========",
		fmt.Sprintf("Guess the WORDLE in %d tries.", maxAttempts),
		fmt.Sprintf("Each guess must be a valid %d-letter word. Hit the enter button to submit.", types.WordLength),
		"After each guess, the color of the tiles will change to show how close your guess was to the word.",
		"---",
		"Example:",
		example("WEARY", 0, types.Correct),
		"The letter W is in the word and in the correct spot.",
		example("PILLS", 1, types.Present),
		"The letter I is in the word but in the wrong spot.",
		example("VAGUE", 3, types.Absent),
		"The letter U is not in the word in any spot.",
		"---",
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *Renderer) Error(msg string) string { return r.errorStyle.Render(msg) }

func (r *Renderer) Success(msg string) string { return r.successStyle.Render(msg) }

func (r *Renderer) Info(msg string) string { return r.infoStyle.Render(msg) }

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
