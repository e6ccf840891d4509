// Package words loads the answer pool and the accepted-guess list.
//
// Both lists are newline-delimited, one word per line. Lines are trimmed and
// uppercased; anything that is not five ASCII letters is skipped. Every answer
// is also an accepted guess. When no file is configured the lists embedded
// from data/ are used.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"termludo/internal/types"
)

//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/allowed.txt
var embeddedAllowed string

// ErrDictionaryLoad wraps every failure to produce a usable dictionary.
var ErrDictionaryLoad = errors.New("dictionary load failure")

// Dictionary is read-only once built and safe to share between sessions.
type Dictionary struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
	skipped    int
}

// Load reads the answers and allowed lists from the given paths. An empty
// path selects the embedded list for that role.
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	answers, err := readList(answersPath, embeddedAnswers)
	if err != nil {
		return nil, err
	}
	allowed, err := readList(allowedPath, embeddedAllowed)
	if err != nil {
		return nil, err
	}
	return New(answers, allowed)
}

// New builds a dictionary from in-memory lists, normalizing them the same
// way files are.
func New(answers, allowed []string) (*Dictionary, error) {
	ans, skippedAnswers := normalize(answers)
	allow, skippedAllowed := normalize(allowed)

	if len(ans) == 0 {
		return nil, fmt.Errorf("%w: answers list is empty", ErrDictionaryLoad)
	}

	return &Dictionary{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(lo.Union(ans, allow)),
		skipped:    skippedAnswers + skippedAllowed,
	}, nil
}

func readList(path, fallback string) ([]string, error) {
	if path == "" {
		return parseLines(strings.NewReader(fallback))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryLoad, err)
	}
	defer f.Close()

	lines, err := parseLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDictionaryLoad, path, err)
	}
	return lines, nil
}

// parseLines returns the non-blank lines of r.
func parseLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// normalize uppercases, drops malformed words and duplicates. It returns the
// clean list and how many entries were malformed.
func normalize(list []string) ([]string, int) {
	upper := lo.Map(list, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	valid := lo.Filter(upper, func(w string, _ int) bool {
		return isWord(w)
	})
	return lo.Uniq(valid), len(upper) - len(valid)
}

func isWord(s string) bool {
	if len(s) != types.WordLength {
		return false
	}
	for i := range len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func toSet(list []string) map[string]struct{} {
	return lo.Associate(list, func(w string) (string, struct{}) {
		return w, struct{}{}
	})
}

// RandomAnswer draws a secret uniformly from the answers pool.
func (d *Dictionary) RandomAnswer(r *rand.Rand) string {
	return d.answers[r.IntN(len(d.answers))]
}

// IsAccepted reports whether word may be submitted as a guess.
func (d *Dictionary) IsAccepted(word string) bool {
	_, ok := d.allowedSet[strings.ToUpper(word)]
	return ok
}

// IsAnswer reports whether word is in the secret pool.
func (d *Dictionary) IsAnswer(word string) bool {
	_, ok := d.answersSet[strings.ToUpper(word)]
	return ok
}

// Answers returns a copy of the answer pool.
func (d *Dictionary) Answers() []string {
	return slices.Clone(d.answers)
}

// Stats returns the number of answers, accepted guesses and skipped lines.
func (d *Dictionary) Stats() (answers, allowed, skipped int) {
	return len(d.answers), len(d.allowedSet), d.skipped
}
