package gallery

import (
	"context"
	"math/rand/v2"

	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

// FeaturedCount is the number of artworks shown on the landing view.
const FeaturedCount = 6

var (
	// Masterpieces are tried first, in order; only the first FeaturedCount are fetched.
	Masterpieces = []int{436532, 459055, 438817, 436105, 437853, 459080, 436947, 437312, 438821, 436535}

	// FeaturedSearchTerms fill the slots that masterpieces leave open.
	FeaturedSearchTerms = []string{
		"Monet Water Lilies",
		"Van Gogh Wheat Field",
		"Picasso",
		"Rodin Thinker",
		"Egyptian sphinx",
		"Greek statue",
		"Renaissance painting",
		"American wing highlights",
	}

	// HighlightDepartments are the last resort: one random early work each.
	HighlightDepartments = []Department{
		{ID: 11, Name: "European Paintings"},
		{ID: 1, Name: "American Wing"},
		{ID: 6, Name: "Asian Art"},
		{ID: 10, Name: "Egyptian Art"},
	}
)

// Featured picks up to [FeaturedCount] artworks with images for the landing
// view. Sources are tried in order: the first masterpieces (fetched
// concurrently), then the first hit of one search term per open slot, then a
// random pick among the first ten works of each highlight department.
// Duplicates are skipped. Remote failures only leave slots empty.
func Featured(ctx context.Context, coll *Collection) []*met.Object {
	picker := &featuredPicker{seen: make(map[int]bool)}

	for _, obj := range coll.Objects(ctx, Masterpieces[:min(FeaturedCount, len(Masterpieces))]) {
		picker.offer(obj)
	}

	if open := FeaturedCount - len(picker.picked); open > 0 {
		for _, term := range FeaturedSearchTerms[:min(open, len(FeaturedSearchTerms))] {
			if ids := coll.Search(ctx, term); len(ids) > 0 {
				picker.offer(coll.Object(ctx, ids[0]))
			}
		}
	}

	for _, dept := range HighlightDepartments {
		if len(picker.picked) >= FeaturedCount || ctx.Err() != nil {
			break
		}
		ids := coll.Department(ctx, dept.ID)
		if len(ids) == 0 {
			continue
		}
		picker.offer(coll.Object(ctx, ids[rand.IntN(min(10, len(ids)))]))
	}

	return picker.picked[:min(FeaturedCount, len(picker.picked))]
}

type featuredPicker struct {
	picked []*met.Object
	seen   map[int]bool
}

func (p *featuredPicker) offer(obj *met.Object) {
	if !obj.HasImage() || p.seen[obj.ObjectID] {
		return
	}
	p.seen[obj.ObjectID] = true
	p.picked = append(p.picked, obj)
}
