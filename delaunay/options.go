package delaunay

import "math/rand"

// config holds NewTriangulation's construction-time settings, mutated by
// Options before the first Point is inserted. Grounded on lvlath's
// builder.builderConfig / BuilderOption shape.
type config struct {
	randomize bool
	rng       *rand.Rand
	observer  *Observer
}

func defaultConfig() config {
	return config{randomize: true}
}

// Option customizes NewTriangulation's construction behavior.
type Option func(*config)

// WithRandomize controls whether the input batch is shuffled before
// sequential insertion (spec.md §4.5: randomizing insertion order keeps the
// expected cavity size small). Defaults to true.
func WithRandomize(randomize bool) Option {
	return func(c *config) { c.randomize = randomize }
}

// WithRand supplies an explicit RNG for the initial shuffle, for
// reproducible construction in tests. If unset, math/rand's auto-seeded
// package-level source is used.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithObserver attaches a set of read-only progress hooks (spec.md §5, §6).
func WithObserver(o *Observer) Option {
	return func(c *config) { c.observer = o }
}
