package main

import (
	"bufio"
	"io"
	"math/rand/v2"
	"time"

	"termludo/internal/render"
	"termludo/internal/words"
)

// App holds everything a run of the program shares between games.
// The dictionary and random source are created once and reused by every
// session.
type App struct {
	Config    *Config
	Words     *words.Dictionary
	Renderer  *render.Renderer
	In        *bufio.Reader
	Out       io.Writer
	ErrOut    io.Writer
	Rand      *rand.Rand
	StartTime time.Time
}
