// Package pkg provides the core libraries for browsing the Metropolitan
// Museum of Art collection.
//
// # Overview
//
// The pkg directory is organized into a few areas:
//
//  1. [gallery] - Domain logic (artist name matching, artist resolution,
//     the artist catalog, featured works, paged browsing sessions)
//  2. [integrations] - The shared HTTP client and the Met Collection API client
//  3. [cache] - Response caching backends (file, Redis, null)
//  4. [observability] - Hooks for logging and metrics
//  5. [errors] - Coded, user-facing errors and input validation
//
// # Architecture
//
// The typical data flow:
//
//	Met Collection API
//	         ↓
//	    [integrations/met] (search, object, departments; cached)
//	         ↓
//	    [gallery] Collection (failures become empty results)
//	         ↓
//	    [gallery] Resolver / CatalogBuilder / Session
//	         ↓
//	    CLI, terminal UI, or HTTP API
//
// # Quick Start
//
// Find works by an artist:
//
//	import (
//	    "github.com/matzehuels/metgallery/pkg/cache"
//	    "github.com/matzehuels/metgallery/pkg/gallery"
//	    "github.com/matzehuels/metgallery/pkg/integrations/met"
//	)
//
//	client := met.NewClient(cache.NewNullCache(), met.Options{})
//	coll := gallery.NewCollection(client, nil)
//	resolver := gallery.NewResolver(coll, gallery.ResolverOptions{})
//
//	res, err := resolver.ResolveArtist(ctx, "Vincent van Gogh")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.ObjectIDs), "works")
//
// [gallery]: https://pkg.go.dev/github.com/matzehuels/metgallery/pkg/gallery
// [integrations]: https://pkg.go.dev/github.com/matzehuels/metgallery/pkg/integrations
// [integrations/met]: https://pkg.go.dev/github.com/matzehuels/metgallery/pkg/integrations/met
// [cache]: https://pkg.go.dev/github.com/matzehuels/metgallery/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/metgallery/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/metgallery/pkg/errors
package pkg
