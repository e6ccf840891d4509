package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termludo/internal/types"
)

type keyMap map[rune]types.Verdict

func (k keyMap) StatusOf(letter rune) types.Verdict { return k[letter] }

func plain(out *bytes.Buffer) *Renderer {
	return New(out, WithColor(false), WithClear(false))
}

func TestRow(t *testing.T) {
	r := plain(&bytes.Buffer{})
	got := r.Row("CRANE", []types.Verdict{types.Correct, types.Absent})
	want := "+---+---+---+---+---+\n" +
		"| C | R | A | N | E |\n" +
		"+---+---+---+---+---+"
	assert.Equal(t, want, got)
}

func TestBoard_PadsToMaxAttempts(t *testing.T) {
	r := plain(&bytes.Buffer{})
	guesses := []types.Guess{{Text: "SLATE"}, {Text: "CRANE"}}

	lines := strings.Split(r.Board(guesses, 6), "\n")
	require.Len(t, lines, 6*3)
	assert.Equal(t, strings.Repeat(" ", 10)+"| S | L | A | T | E |", lines[1])
	assert.Equal(t, strings.Repeat(" ", 10)+"| C | R | A | N | E |", lines[4])
	assert.Equal(t, strings.Repeat(" ", 10)+"|   |   |   |   |   |", lines[7])
}

func TestKeyboard_Layout(t *testing.T) {
	r := plain(&bytes.Buffer{})
	lines := strings.Split(r.Keyboard(keyMap{}), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "| Q | W | E | R | T | Y | U | I | O | P |", lines[1])
	assert.Equal(t, "  | A | S | D | F | G | H | J | K | L |", lines[4])
	assert.Equal(t, "      | Z | X | C | V | B | N | M |", lines[7])
}

func TestKeyboard_UsesKeyStatus(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColor(true))
	colored := r.Keyboard(keyMap{'Q': types.Correct})
	plainOut := plain(&bytes.Buffer{}).Keyboard(keyMap{'Q': types.Correct})
	assert.NotEqual(t, plainOut, colored, "colour profile should add escape sequences")
	assert.Contains(t, colored, "\x1b[")
}

func TestRow_PaletteBackgrounds(t *testing.T) {
	r := New(&bytes.Buffer{}, WithColor(true))
	tests := []struct {
		verdict types.Verdict
		bg      string
	}{
		{types.Correct, "48;2;83;141;78"},
		{types.Present, "48;2;181;159;59"},
		{types.Absent, "48;2;58;58;60"},
		{types.Unknown, "48;2;18;18;19"},
	}
	for _, tt := range tests {
		t.Run(tt.verdict.String(), func(t *testing.T) {
			got := r.Row("A", []types.Verdict{tt.verdict})
			assert.Contains(t, got, tt.bg)
			assert.Contains(t, got, "38;2;255;255;255", "tiles use a white foreground")
			for _, other := range tests {
				if other.verdict != tt.verdict {
					assert.NotContains(t, got, other.bg)
				}
			}
		})
	}
}

func TestBanner(t *testing.T) {
	r := plain(&bytes.Buffer{})
	lines := strings.Split(r.Banner(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "+---"))
	assert.True(t, strings.HasSuffix(lines[2], "---+"))
	assert.Contains(t, lines[1], "WORDLE")
}

func TestScreen(t *testing.T) {
	r := plain(&bytes.Buffer{})
	out := r.Screen(nil, 6, keyMap{})
	assert.Contains(t, out, "WORDLE")
	assert.Contains(t, out, "| Q | W | E |")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMenuAndTutorial(t *testing.T) {
	r := plain(&bytes.Buffer{})

	menu := r.Menu("1.2.3")
	assert.Contains(t, menu, "Wordle v1.2.3\n=============\n")
	assert.Contains(t, menu, "1. Play The Game.")
	assert.Contains(t, menu, "3. Exit.")

	tut := r.Tutorial(6)
	assert.Contains(t, tut, "Guess the WORDLE in 6 tries.")
	assert.Contains(t, tut, "| W | E | A | R | Y |")
	assert.Contains(t, tut, "The letter U is not in the word in any spot.")
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	New(&out, WithColor(false), WithClear(false)).Clear()
	assert.Empty(t, out.String())

	New(&out, WithColor(false)).Clear()
	assert.Equal(t, "\x1b[2J\x1b[H", out.String())
}
