package gallery

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/matzehuels/metgallery/pkg/observability"
)

const (
	DefaultMaxResults      = 50                     // Accepted IDs per resolution
	DefaultResolveBatch    = 20                     // Records fetched concurrently
	DefaultPerWordLimit    = 100                    // IDs kept from each per-word search
	DefaultMinQueryWordLen = 3                      // Shorter name words are not searched alone
	DefaultResolvePause    = 200 * time.Millisecond // Pause between batches
)

// ResolverOptions configures artist resolution.
type ResolverOptions struct {
	MaxResults      int           // stop after this many matches (default: 50)
	BatchSize       int           // concurrent detail fetches (default: 20)
	PerWordLimit    int           // IDs kept per word query (default: 100)
	MinQueryWordLen int           // minimum rune length of a searched word (default: 3)
	Pause           time.Duration // pause between batches (default: 200ms, negative: none)
	Matcher         Matcher       // name comparison (default: DefaultMatcher)
}

// WithDefaults returns a copy of ResolverOptions with zero values replaced by defaults.
func (o ResolverOptions) WithDefaults() ResolverOptions {
	opts := o
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultResolveBatch
	}
	if opts.PerWordLimit <= 0 {
		opts.PerWordLimit = DefaultPerWordLimit
	}
	if opts.MinQueryWordLen <= 0 {
		opts.MinQueryWordLen = DefaultMinQueryWordLen
	}
	if opts.Pause < 0 {
		opts.Pause = 0
	} else if opts.Pause == 0 {
		opts.Pause = DefaultResolvePause
	}
	opts.Matcher = opts.Matcher.WithDefaults()
	return opts
}

// Resolution is the outcome of resolving one artist name.
type Resolution struct {
	Artist     string // name as requested
	ObjectIDs  []int  // accepted IDs, at most MaxResults, in discovery order
	Candidates int    // distinct IDs gathered by the searches
	Checked    int    // records fetched and examined
	Batches    int    // detail batches processed
}

// NoCandidates reports that the searches returned nothing to examine.
func (r *Resolution) NoCandidates() bool { return r.Candidates == 0 }

// Empty reports that no artwork was attributed to the artist.
func (r *Resolution) Empty() bool { return len(r.ObjectIDs) == 0 }

// Resolver finds artworks by a named artist. The remote search matches any
// field, so it gathers candidates broadly and keeps only records whose
// artist name passes the [Matcher].
type Resolver struct {
	coll *Collection
	opts ResolverOptions
}

// NewResolver creates a Resolver reading from coll.
func NewResolver(coll *Collection, opts ResolverOptions) *Resolver {
	return &Resolver{coll: coll, opts: opts.WithDefaults()}
}

// ResolveArtist returns up to MaxResults object IDs whose record has an
// image and an artist name matching name.
//
// Remote failures never surface: they shrink the candidate pool instead.
// The only error is ctx's, when it is cancelled mid-way.
func (r *Resolver) ResolveArtist(ctx context.Context, name string) (*Resolution, error) {
	start := time.Now()
	hooks := observability.Gallery()
	hooks.OnResolveStart(ctx, name)

	res, err := r.resolve(ctx, name)
	matches := 0
	if res != nil {
		matches = len(res.ObjectIDs)
	}
	hooks.OnResolveComplete(ctx, name, matches, time.Since(start), err)
	return res, err
}

func (r *Resolver) resolve(ctx context.Context, name string) (*Resolution, error) {
	res := &Resolution{Artist: name, ObjectIDs: []int{}}

	candidates := r.Candidates(ctx, name)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Candidates = candidates.Len()
	if res.Candidates == 0 {
		r.coll.Logger().Debug("no candidates", "artist", name)
		return res, nil
	}

	target := NormalizeArtistName(name)
	pause := Throttle(r.opts.Pause)

	for n, batch := range batches(candidates.IDs(), r.opts.BatchSize) {
		if n > 0 {
			if err := pause.Wait(ctx); err != nil {
				return nil, err
			}
		}
		objs := r.coll.Objects(ctx, batch)
		res.Batches++
		for i, obj := range objs {
			if obj == nil {
				continue
			}
			res.Checked++
			if !obj.HasImage() || !obj.HasArtist() {
				continue
			}
			if r.opts.Matcher.Match(target, NormalizeArtistName(obj.ArtistDisplayName)) {
				res.ObjectIDs = append(res.ObjectIDs, batch[i])
			}
		}
		if len(res.ObjectIDs) >= r.opts.MaxResults {
			res.ObjectIDs = res.ObjectIDs[:r.opts.MaxResults]
			break
		}
	}

	r.coll.Logger().Debug("artist filtered", "artist", name,
		"candidates", res.Candidates, "checked", res.Checked, "matches", len(res.ObjectIDs))
	return res, nil
}

// Candidates gathers the IDs worth examining for name: every hit of a
// search for the full name, plus the first PerWordLimit hits of a search for
// each word of at least MinQueryWordLen runes. Word searches catch records
// the full-name search misses because of word order or diacritics.
func (r *Resolver) Candidates(ctx context.Context, name string) *CandidateSet {
	set := NewCandidateSet()
	name = strings.TrimSpace(name)
	if name == "" {
		return set
	}

	set.Add(r.coll.Search(ctx, name)...)

	for _, word := range strings.Split(name, " ") {
		if utf8.RuneCountInString(word) < r.opts.MinQueryWordLen {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		ids := r.coll.Search(ctx, word)
		set.Add(ids[:min(len(ids), r.opts.PerWordLimit)]...)
	}
	return set
}
