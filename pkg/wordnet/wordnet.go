package wordnet

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"iter"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordnet/pkg/cache"
	"github.com/matzehuels/wordnet/pkg/digraph"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability"
	"github.com/matzehuels/wordnet/pkg/sca"
)

// WordNet is an immutable noun lexicon over a synset taxonomy.
type WordNet struct {
	nouns   map[string][]int // noun -> ascending synset ids
	synsets []string         // id -> space-separated nouns
	glosses []string         // id -> gloss
	graph   *digraph.Digraph
	sca     *sca.SCA
}

type options struct {
	logger    *log.Logger
	cacheSize int
	hooks     observability.QueryHooks
}

// Option configures lexicon construction.
type Option func(*options)

// WithLogger sets the logger used during construction.
// Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCacheSize lets the engine keep up to n per-synset distance maps in
// memory across queries. Zero (the default) disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithQueryHooks routes the engine's query events to h instead of the
// global observability hooks.
func WithQueryHooks(h observability.QueryHooks) Option {
	return func(o *options) { o.hooks = h }
}

// Open reads the synset and hypernym files at the given paths and builds a
// lexicon. Returns NULL_INPUT for an empty path, FILE_NOT_FOUND if a file
// does not exist, and the errors of [Load] otherwise.
func Open(ctx context.Context, synsetsPath, hypernymsPath string, opts ...Option) (*WordNet, error) {
	if err := errs.ValidatePath(synsetsPath); err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "synsets path")
	}
	if err := errs.ValidatePath(hypernymsPath); err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "hypernyms path")
	}

	synsets, err := openFile(synsetsPath)
	if err != nil {
		return nil, err
	}
	defer synsets.Close()

	hypernyms, err := openFile(hypernymsPath)
	if err != nil {
		return nil, err
	}
	defer hypernyms.Close()

	return Load(ctx, synsets, hypernyms, opts...)
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}

// Load builds a lexicon from a synset stream and a hypernym stream.
// Returns NULL_INPUT if either reader is nil and INVALID_FORMAT for any
// malformed record, duplicate or missing synset id, or hypernym edge whose
// endpoint is not a synset.
func Load(ctx context.Context, synsets, hypernyms io.Reader, opts ...Option) (wn *WordNet, err error) {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	hooks := observability.Load()
	hooks.OnLoadStart(ctx)
	defer func() {
		if err != nil {
			hooks.OnLoadComplete(ctx, 0, 0, 0, time.Since(start), err)
			return
		}
		hooks.OnLoadComplete(ctx, len(wn.synsets), len(wn.nouns), wn.graph.E(), time.Since(start), nil)
	}()

	if synsets == nil {
		return nil, errs.New(errs.ErrCodeNullInput, "synsets reader is nil")
	}
	if hypernyms == nil {
		return nil, errs.New(errs.ErrCodeNullInput, "hypernyms reader is nil")
	}

	wn = &WordNet{nouns: make(map[string][]int)}
	if err := wn.readSynsets(ctx, synsets); err != nil {
		return nil, err
	}
	o.logger.Debug("read synsets", "synsets", len(wn.synsets), "nouns", len(wn.nouns))

	if err := wn.readHypernyms(ctx, hypernyms); err != nil {
		return nil, err
	}
	o.logger.Debug("read hypernyms", "edges", wn.graph.E())

	c, err := cache.NewLRU(o.cacheSize)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "create distance cache")
	}
	engineOpts := []sca.Option{sca.WithCache(c)}
	if o.hooks != nil {
		engineOpts = append(engineOpts, sca.WithHooks(o.hooks))
	}
	wn.sca, err = sca.New(wn.graph, engineOpts...)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("built lexicon",
		"synsets", len(wn.synsets),
		"nouns", len(wn.nouns),
		"edges", wn.graph.E(),
		"duration", time.Since(start).Round(time.Millisecond))
	return wn, nil
}

func (wn *WordNet) readSynsets(ctx context.Context, r io.Reader) error {
	records := make(map[int]synsetRecord)
	err := scanLines(ctx, r, "synsets", func(line string, n int) error {
		rec, err := parseSynset(line, n)
		if err != nil {
			return err
		}
		if _, dup := records[rec.id]; dup {
			return errs.New(errs.ErrCodeInvalidFormat, "synsets line %d: duplicate synset id %d", n, rec.id)
		}
		records[rec.id] = rec
		return nil
	})
	if err != nil {
		return err
	}

	count := len(records)
	wn.synsets = make([]string, count)
	wn.glosses = make([]string, count)
	for id := 0; id < count; id++ {
		rec, ok := records[id]
		if !ok {
			return errs.New(errs.ErrCodeInvalidFormat, "synsets: ids must be 0..%d, missing %d", count-1, id)
		}
		wn.synsets[id] = rec.text
		wn.glosses[id] = rec.gloss
		for _, noun := range rec.nouns {
			ids := wn.nouns[noun]
			if len(ids) > 0 && ids[len(ids)-1] == id {
				continue
			}
			wn.nouns[noun] = append(ids, id)
		}
	}

	wn.graph, err = digraph.New(count)
	return err
}

func (wn *WordNet) readHypernyms(ctx context.Context, r io.Reader) error {
	return scanLines(ctx, r, "hypernyms", func(line string, n int) error {
		id, hypernyms, err := parseHypernyms(line, n)
		if err != nil {
			return err
		}
		if err := wn.graph.Validate(id); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidFormat, err, "hypernyms line %d", n)
		}
		for _, h := range hypernyms {
			if err := wn.graph.AddEdge(id, h); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidFormat, err, "hypernyms line %d", n)
			}
		}
		return nil
	})
}

// Nouns yields every distinct noun once, in no particular order.
func (wn *WordNet) Nouns() iter.Seq[string] {
	return maps.Keys(wn.nouns)
}

// NounCount returns the number of distinct nouns.
func (wn *WordNet) NounCount() int { return len(wn.nouns) }

// SynsetCount returns the number of synsets, which is the vertex count of
// the taxonomy.
func (wn *WordNet) SynsetCount() int { return len(wn.synsets) }

// IsNoun reports whether word is a noun of the lexicon.
// Returns NULL_INPUT if word is empty.
func (wn *WordNet) IsNoun(word string) (bool, error) {
	if word == "" {
		return false, errs.New(errs.ErrCodeNullInput, "word is empty")
	}
	_, ok := wn.nouns[word]
	return ok, nil
}

// Synsets returns the ids of the synsets containing noun in ascending order.
// Returns NULL_INPUT if noun is empty and NOT_A_NOUN if it is unknown.
func (wn *WordNet) Synsets(noun string) ([]int, error) {
	ids, err := wn.lookup("noun", noun)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ids), nil
}

// Synset returns the space-separated nouns of synset id.
// Returns OUT_OF_RANGE if id is not a synset.
func (wn *WordNet) Synset(id int) (string, error) {
	if err := wn.graph.Validate(id); err != nil {
		return "", err
	}
	return wn.synsets[id], nil
}

// Gloss returns the gloss of synset id, which may be empty.
// Returns OUT_OF_RANGE if id is not a synset.
func (wn *WordNet) Gloss(id int) (string, error) {
	if err := wn.graph.Validate(id); err != nil {
		return "", err
	}
	return wn.glosses[id], nil
}

// SCA returns the synset that is a shortest common ancestor of noun1 and
// noun2. Returns NULL_INPUT if a noun is empty and NOT_A_NOUN if a noun is
// unknown. Returns "" if the nouns share no ancestor, which cannot happen
// in a single-rooted taxonomy.
func (wn *WordNet) SCA(noun1, noun2 string) (string, error) {
	a, b, err := wn.resolve(noun1, noun2)
	if err != nil {
		return "", err
	}
	id, err := wn.sca.AncestorSet(a, b)
	if err != nil {
		return "", err
	}
	if id == sca.None {
		return "", nil
	}
	return wn.synsets[id], nil
}

// Distance returns the length of the shortest ancestral path between any
// synset of noun1 and any synset of noun2, with the failure modes of
// [WordNet.SCA]. Returns sca.None if the nouns share no ancestor.
func (wn *WordNet) Distance(noun1, noun2 string) (int, error) {
	a, b, err := wn.resolve(noun1, noun2)
	if err != nil {
		return 0, err
	}
	return wn.sca.LengthSet(a, b)
}

// Path returns the shortest ancestral path between the synsets of noun1 and
// noun2, with the failure modes of [WordNet.SCA].
func (wn *WordNet) Path(noun1, noun2 string) (sca.AncestralPath, error) {
	a, b, err := wn.resolve(noun1, noun2)
	if err != nil {
		return sca.AncestralPath{Ancestor: sca.None, Length: sca.None, V: sca.None, W: sca.None}, err
	}
	return wn.sca.PathSet(a, b)
}

// Graph returns the taxonomy. It must not be modified.
func (wn *WordNet) Graph() *digraph.Digraph { return wn.graph }

// Engine returns the shortest-common-ancestor engine over the taxonomy.
func (wn *WordNet) Engine() *sca.SCA { return wn.sca }

func (wn *WordNet) resolve(noun1, noun2 string) ([]int, []int, error) {
	if noun1 == "" {
		return nil, nil, errs.New(errs.ErrCodeNullInput, "noun1 is empty")
	}
	if noun2 == "" {
		return nil, nil, errs.New(errs.ErrCodeNullInput, "noun2 is empty")
	}
	a, err := wn.lookup("noun1", noun1)
	if err != nil {
		return nil, nil, err
	}
	b, err := wn.lookup("noun2", noun2)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (wn *WordNet) lookup(name, noun string) ([]int, error) {
	if noun == "" {
		return nil, errs.New(errs.ErrCodeNullInput, "%s is empty", name)
	}
	ids, ok := wn.nouns[noun]
	if !ok {
		return nil, errs.New(errs.ErrCodeNotANoun, "%s %q is not a noun", name, noun)
	}
	return ids, nil
}
