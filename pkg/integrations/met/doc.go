// Package met provides an HTTP client for The Metropolitan Museum of Art
// Collection API.
//
// # Overview
//
// The API is public and needs no key. Four endpoints are used:
//
//   - /search?q=<text>&hasImages=true: object IDs matching free text
//   - /search?departmentId=<id>&hasImages=true: object IDs in a department
//   - /objects/<id>: one artwork record
//   - /departments: the list of curatorial departments
//
// # Usage
//
//	client := met.NewClient(cache.NewNullCache(), met.Options{})
//
//	res, err := client.Search(ctx, "Monet", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	obj, err := client.Object(ctx, res.ObjectIDs[0], false)
//
// # Caching
//
// Search results and objects are cached through the [cache.Cache] backend
// passed to [NewClient]. Pass refresh=true to bypass cached entries.
//
// # Errors
//
// A missing object yields [integrations.ErrNotFound]. A search with no hits
// is not an error: the API answers {"total":0,"objectIDs":null}, which
// becomes an empty [SearchResult].
package met
