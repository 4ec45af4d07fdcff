package wordnet

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	errs "github.com/matzehuels/wordnet/pkg/errors"
)

// maxLineSize bounds a single record. WordNet 3.0 glosses stay far below it.
const maxLineSize = 1 << 20

// ctxCheckInterval is how many lines are read between context checks.
const ctxCheckInterval = 4096

// synsetRecord is one parsed line of the synset stream.
type synsetRecord struct {
	id    int
	text  string
	nouns []string
	gloss string
}

// scanLines calls fn for every non-blank line of r with its 1-based number.
func scanLines(ctx context.Context, r io.Reader, stream string, fn func(line string, n int) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for sc.Scan() {
		n++
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line, n); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "%s: read after line %d", stream, n)
	}
	return nil
}

// parseSynset splits "id,nouns,gloss". The gloss keeps any further commas.
func parseSynset(line string, n int) (synsetRecord, error) {
	fields := strings.SplitN(line, ",", 3)
	if len(fields) < 2 {
		return synsetRecord{}, errs.New(errs.ErrCodeInvalidFormat,
			"synsets line %d: want id,nouns,gloss, got %d field(s)", n, len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return synsetRecord{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "synsets line %d", n)
	}

	nouns := strings.Fields(fields[1])
	if len(nouns) == 0 {
		return synsetRecord{}, errs.New(errs.ErrCodeInvalidFormat, "synsets line %d: synset %d has no nouns", n, id)
	}

	rec := synsetRecord{id: id, text: strings.Join(nouns, " "), nouns: nouns}
	if len(fields) == 3 {
		rec.gloss = fields[2]
	}
	return rec, nil
}

// parseHypernyms splits "id,h1,h2,..." into the synset id and its hypernyms.
// Empty trailing fields are ignored.
func parseHypernyms(line string, n int) (int, []int, error) {
	fields := strings.Split(line, ",")

	id, err := parseID(fields[0])
	if err != nil {
		return 0, nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "hypernyms line %d", n)
	}

	hypernyms := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if strings.TrimSpace(f) == "" {
			continue
		}
		h, err := parseID(f)
		if err != nil {
			return 0, nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "hypernyms line %d", n)
		}
		hypernyms = append(hypernyms, h)
	}
	return id, hypernyms, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidInput, "invalid synset id %q", s)
	}
	if id < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "negative synset id %d", id)
	}
	return id, nil
}
