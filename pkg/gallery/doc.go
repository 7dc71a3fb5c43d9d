// Package gallery implements the browsing flows on top of the museum API:
// featured artworks, paged search, and the "browse by artist" feature.
//
// # Artist resolution
//
// The collection API has no artist index. [Resolver] therefore searches
// for the full name and for each longer word of it, pools the hits in a
// [CandidateSet], fetches the records in throttled batches and keeps those
// whose artist name passes a word-overlap heuristic ([Matcher]):
//
//	coll := gallery.NewCollection(metClient, logger)
//	res, err := gallery.NewResolver(coll, gallery.ResolverOptions{}).
//	    ResolveArtist(ctx, "Vincent van Gogh")
//
// Names are compared after [NormalizeArtistName]. The heuristic is
// tunable and makes no precision promise.
//
// # Artist catalog
//
// [CatalogBuilder] samples a few departments and seed searches to build the
// artist directory ([Catalog]). It runs once per process and only grows.
//
// # Failure model
//
// [Collection] turns every remote failure into an absent value and logs it,
// so the flows above degrade to fewer results instead of failing. Only
// context cancellation and [ErrCatalogUnavailable] reach the caller.
package gallery
