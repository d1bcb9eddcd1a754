package social

import (
	"github.com/sirupsen/logrus"
	"io"
	"math/rand"
	"time"
)

//go:generate mockgen -package mocks -destination mocks/mock.go github.com/ejacobg/graphwalk/social Randomizer

// Randomizer is implemented by objects that can return a non-negative
// pseudo-random number in [0, n). *rand.Rand satisfies this interface.
type Randomizer interface {
	Intn(n int) int
}

// Config encapsulates the settings for configuring a social graph.
type Config struct {
	// A source of randomness used when populating the graph. If not
	// specified, a time-seeded math/rand source is used.
	Rand Randomizer

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) withDefaults() {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		cfg.Logger = logrus.NewEntry(l)
	}
}
