// Package pkg provides the libraries behind the wordnet command.
//
// # Overview
//
// WordNet groups English nouns into synsets (sets of synonyms) and links
// every synset to its hypernyms, the more general synsets it is a kind of.
// The links form a rooted DAG. Two nouns are related by their shortest
// ancestral path: the shortest pair of upward paths that meet in a common
// ancestor synset.
//
// The pkg directory is organized into three areas:
//
//  1. Core - [digraph], [sca], [wordnet], [outcast]
//  2. Formats - [io] for digraph files and JSON, [render/nodelink] for diagrams
//  3. Infrastructure - [errors], [cache], [config], [observability], [server], [buildinfo]
//
// # Architecture
//
//	synsets.txt + hypernyms.txt
//	         ↓
//	    [wordnet] (parse, index nouns, build taxonomy)
//	         ↓
//	    [digraph] ← [sca] (BFS distance maps, shortest common ancestor)
//	         ↓
//	    [outcast], [server], [render/nodelink]
//
// # Quick Start
//
//	wn, err := wordnet.Open(ctx, "synsets.txt", "hypernyms.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := wn.Distance("horse", "cat")   // hops on the shortest ancestral path
//	anc, _ := wn.SCA("horse", "cat")      // synset text of the ancestor
//
//	o, _ := outcast.New(wn)
//	odd, _ := o.Find(ctx, []string{"horse", "zebra", "cat", "oak"})
//
// # Concurrency
//
// A loaded [wordnet.WordNet] and its [sca.SCA] are immutable and safe for
// concurrent use. The optional distance cache is itself thread-safe.
//
// [digraph]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/digraph
// [sca]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/sca
// [sca.SCA]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/sca#SCA
// [wordnet]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/wordnet
// [wordnet.WordNet]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/wordnet#WordNet
// [outcast]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/outcast
// [io]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/errors
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/server
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordnet/pkg/buildinfo
package pkg
