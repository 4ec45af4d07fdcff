package outcast

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
	"github.com/matzehuels/wordnet/pkg/wordnet"
)

// table is a symmetric Distancer backed by a fixed map.
type table struct {
	d     map[[2]string]int
	calls atomic.Int64
}

func (t *table) Distance(a, b string) (int, error) {
	t.calls.Add(1)
	if a > b {
		a, b = b, a
	}
	d, ok := t.d[[2]string{a, b}]
	if !ok {
		return 0, errs.New(errs.ErrCodeNotANoun, "unknown pair %s/%s", a, b)
	}
	return d, nil
}

func TestNewNil(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errs.Is(err, errs.ErrCodeNullInput), "got %v", err)
}

func TestFind(t *testing.T) {
	// "c" is far from both "a" and "b", which are close to each other
	d := &table{d: map[[2]string]int{
		{"a", "b"}: 1,
		{"a", "c"}: 9,
		{"b", "c"}: 8,
	}}
	o, err := New(d)
	require.NoError(t, err)

	got, err := o.Find(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	scores, err := o.Scores(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []Score{{"a", 10}, {"b", 9}, {"c", 17}}, scores)
}

func TestFindTieGoesToFirst(t *testing.T) {
	d := &table{d: map[[2]string]int{
		{"a", "b"}: 3,
		{"a", "c"}: 3,
		{"b", "c"}: 3,
	}}

	for _, p := range []int{1, 2, 8} {
		o, err := New(d, WithParallelism(p))
		require.NoError(t, err)

		got, err := o.Find(context.Background(), []string{"b", "c", "a"})
		require.NoError(t, err)
		assert.Equal(t, "b", got, "parallelism %d", p)
	}
}

func TestFindSkipsEqualNouns(t *testing.T) {
	d := &table{d: map[[2]string]int{{"a", "b"}: 2}}
	o, err := New(d)
	require.NoError(t, err)

	scores, err := o.Scores(context.Background(), []string{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []Score{{"a", 2}, {"a", 2}, {"b", 4}}, scores)
	assert.Equal(t, int64(4), d.calls.Load())

	got, err := o.Find(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestFindErrors(t *testing.T) {
	d := &table{d: map[[2]string]int{{"a", "b"}: 2}}
	o, err := New(d, WithParallelism(2))
	require.NoError(t, err)

	_, err = o.Find(context.Background(), nil)
	assert.True(t, errs.Is(err, errs.ErrCodeEmptyInput), "got %v", err)

	_, err = o.Find(context.Background(), []string{"a", "b", "zzz"})
	assert.True(t, errs.Is(err, errs.ErrCodeNotANoun), "got %v", err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = o.Find(ctx, []string{"a", "b"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindWithWordNet(t *testing.T) {
	testdata := filepath.Join("..", "wordnet", "testdata")
	wn, err := wordnet.Open(context.Background(),
		filepath.Join(testdata, "synsets.txt"),
		filepath.Join(testdata, "hypernyms.txt"))
	require.NoError(t, err)

	o, err := New(wn)
	require.NoError(t, err)

	got, err := o.Find(context.Background(), []string{"horse", "zebra", "cat", "oak"})
	require.NoError(t, err)
	assert.Equal(t, "oak", got)

	scores, err := o.Scores(context.Background(), []string{"horse", "zebra", "cat", "oak"})
	require.NoError(t, err)
	assert.Equal(t, []Score{{"horse", 13}, {"zebra", 13}, {"cat", 15}, {"oak", 21}}, scores)
}

type queryLog struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (q *queryLog) OnQuery(op string, _ time.Duration, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = append(q.ops, op)
	q.errs = append(q.errs, err)
}

func TestRank(t *testing.T) {
	q := &queryLog{}
	observability.SetQueryHooks(q)
	t.Cleanup(observability.Reset)

	d := &table{d: map[[2]string]int{
		{"a", "b"}: 1,
		{"a", "c"}: 9,
		{"b", "c"}: 8,
	}}
	o, err := New(d)
	require.NoError(t, err)

	res, err := o.Rank(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, Result{Outcast: "c", Index: 2, Scores: []Score{{"a", 10}, {"b", 9}, {"c", 17}}}, res)

	_, err = o.Rank(context.Background(), nil)
	require.Error(t, err)

	q.mu.Lock()
	defer q.mu.Unlock()
	assert.Equal(t, []string{observability.OpOutcast, observability.OpOutcast}, q.ops)
	assert.NoError(t, q.errs[0])
	assert.True(t, errs.Is(q.errs[1], errs.ErrCodeEmptyInput), "got %v", q.errs[1])
}

func TestMax(t *testing.T) {
	tests := []struct {
		name   string
		scores []Score
		want   int
	}{
		{"empty", nil, -1},
		{"single", []Score{{"a", 0}}, 0},
		{"last", []Score{{"a", 1}, {"b", 2}, {"c", 7}}, 2},
		{"first on tie", []Score{{"a", 3}, {"b", 5}, {"c", 5}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Max(tt.scores))
		})
	}
}
