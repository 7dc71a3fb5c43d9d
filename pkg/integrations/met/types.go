package met

// Object is one artwork record as returned by /objects/<id>.
// Only the fields the gallery consumes are decoded.
type Object struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	Culture           string `json:"culture"`
	Medium            string `json:"medium"`
	Dimensions        string `json:"dimensions"`
	Department        string `json:"department"`
	ObjectWikidataURL string `json:"objectWikidata_URL"`
	ObjectURL         string `json:"objectURL"`
}

// HasImage reports whether the record carries a full-size primary image.
func (o *Object) HasImage() bool { return o != nil && o.PrimaryImage != "" }

// HasArtist reports whether the record names an artist.
func (o *Object) HasArtist() bool { return o != nil && o.ArtistDisplayName != "" }

// Thumbnail returns the small image URL, falling back to the full image.
func (o *Object) Thumbnail() string {
	if o.PrimaryImageSmall != "" {
		return o.PrimaryImageSmall
	}
	return o.PrimaryImage
}

// SearchResult is the response of /search. ObjectIDs keeps the API order.
type SearchResult struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// Empty reports whether the search matched nothing.
func (r *SearchResult) Empty() bool { return r == nil || len(r.ObjectIDs) == 0 }

// Department is a curatorial department of the museum.
type Department struct {
	ID          int    `json:"departmentId"`
	DisplayName string `json:"displayName"`
}

type departmentsResponse struct {
	Departments []Department `json:"departments"`
}
