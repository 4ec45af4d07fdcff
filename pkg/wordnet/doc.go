// Package wordnet builds a noun lexicon over a synset taxonomy and answers
// semantic-relatedness queries in noun terms.
//
// # Input
//
// A lexicon is built from two line-oriented record streams:
//
//	synsets:   id,noun1 noun2 ...,gloss
//	hypernyms: id,hypernymId1,hypernymId2,...
//
// Synset ids must be the dense integers 0..N-1, one record each; N becomes
// the vertex count of the taxonomy. Every hypernym record adds the edges
// id→hypernymId to the graph. Glosses may contain commas. Blank lines are
// skipped. Any other malformed record fails construction with INVALID_FORMAT
// naming the stream and line.
//
// # Queries
//
// A noun may belong to several synsets. [WordNet.Distance] and [WordNet.SCA]
// resolve both nouns to their synset id sets and delegate to the
// shortest-common-ancestor engine in [github.com/matzehuels/wordnet/pkg/sca]:
//
//	wn, _ := wordnet.Open(ctx, "synsets.txt", "hypernyms.txt")
//	d, _ := wn.Distance("horse", "zebra") // 2
//	s, _ := wn.SCA("horse", "zebra")      // "equine equid"
//
// # Concurrency
//
// A WordNet is immutable once built and safe for concurrent queries.
package wordnet
