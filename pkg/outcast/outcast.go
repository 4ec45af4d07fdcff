// Package outcast picks the noun least related to the others in a list.
//
// For every noun the sum of its distances to all other nouns is computed;
// the noun with the largest sum is the outcast. Ties go to the noun that
// appears first. Rows are summed concurrently but the result is
// independent of scheduling.
//
//	o, _ := outcast.New(wn)
//	noun, _ := o.Find(ctx, []string{"horse", "zebra", "cat", "oak"}) // "oak"
package outcast

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
)

// Distancer measures the semantic distance between two nouns.
// *wordnet.WordNet satisfies it.
type Distancer interface {
	Distance(a, b string) (int, error)
}

// Score is the distance sum of one noun.
type Score struct {
	Noun string
	Sum  int
}

// Outcast finds outcasts using a Distancer.
type Outcast struct {
	d           Distancer
	parallelism int
}

// Option configures an Outcast.
type Option func(*Outcast)

// WithParallelism limits how many rows are summed at once.
// Values below 1 use GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *Outcast) { o.parallelism = n }
}

// New creates an Outcast over d. Returns NULL_INPUT if d is nil.
func New(d Distancer, opts ...Option) (*Outcast, error) {
	if d == nil {
		return nil, errs.New(errs.ErrCodeNullInput, "distancer is nil")
	}
	o := &Outcast{d: d}
	for _, opt := range opts {
		opt(o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	return o, nil
}

// Result is the outcast of a list together with every noun's score.
type Result struct {
	Outcast string
	Index   int
	Scores  []Score
}

// Find returns the outcast of nouns. Returns EMPTY_INPUT for an empty list
// and the first Distancer error encountered otherwise.
func (o *Outcast) Find(ctx context.Context, nouns []string) (string, error) {
	res, err := o.Rank(ctx, nouns)
	if err != nil {
		return "", err
	}
	return res.Outcast, nil
}

// Rank scores nouns and picks the outcast, with the failure modes of
// [Outcast.Find].
func (o *Outcast) Rank(ctx context.Context, nouns []string) (res Result, err error) {
	start := time.Now()
	defer func() { observability.Query().OnQuery(observability.OpOutcast, time.Since(start), err) }()

	scores, err := o.scores(ctx, nouns)
	if err != nil {
		return Result{}, err
	}
	best := Max(scores)
	return Result{Outcast: scores[best].Noun, Index: best, Scores: scores}, nil
}

// Max returns the index of the first maximal sum, or -1 if scores is empty.
func Max(scores []Score) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i, s := range scores {
		if s.Sum > scores[best].Sum {
			best = i
		}
	}
	return best
}

// Scores returns the distance sum of every noun in input order.
// Equal strings are not compared with each other, so a repeated noun
// contributes nothing to its own row.
func (o *Outcast) Scores(ctx context.Context, nouns []string) ([]Score, error) {
	return o.scores(ctx, nouns)
}

func (o *Outcast) scores(ctx context.Context, nouns []string) ([]Score, error) {
	if len(nouns) == 0 {
		return nil, errs.New(errs.ErrCodeEmptyInput, "noun list is empty")
	}

	scores := make([]Score, len(nouns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i, a := range nouns {
		g.Go(func() error {
			sum := 0
			for _, b := range nouns {
				if err := ctx.Err(); err != nil {
					return err
				}
				if a == b {
					continue
				}
				d, err := o.d.Distance(a, b)
				if err != nil {
					return err
				}
				sum += d
			}
			scores[i] = Score{Noun: a, Sum: sum}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
