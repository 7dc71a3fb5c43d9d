package gallery

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestThrottle_Wait(t *testing.T) {
	const d = 30 * time.Millisecond

	start := time.Now()
	if err := Throttle(d).Wait(context.Background()); err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < d {
		t.Errorf("Wait returned after %v, want at least %v", elapsed, d)
	}
}

func TestThrottle_WaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Throttle(time.Minute).Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Wait did not return early: %v", elapsed)
	}
}

func TestThrottle_WaitNone(t *testing.T) {
	if err := Throttle(0).Wait(context.Background()); err != nil {
		t.Errorf("Wait(0) error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Throttle(0).Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait(0) on cancelled ctx: expected context.Canceled, got %v", err)
	}
}

func TestBatchesTable(t *testing.T) {
	tests := []struct {
		ids  []int
		size int
		want [][]int
	}{
		{[]int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{[]int{1, 2}, 5, [][]int{{1, 2}}},
		{[]int{1, 2, 3}, 0, [][]int{{1, 2, 3}}},
		{nil, 3, nil},
	}
	for _, tt := range tests {
		got := batches(tt.ids, tt.size)
		if !slices.EqualFunc(got, tt.want, slices.Equal[[]int]) {
			t.Errorf("batches(%v, %d) = %v, want %v", tt.ids, tt.size, got, tt.want)
		}
	}
}

func pausedResolver(src *fakeSource, batchSize int, pause time.Duration) *Resolver {
	return NewResolver(NewCollection(src, nil), ResolverOptions{BatchSize: batchSize, Pause: pause})
}

func TestResolveArtist_PausesBetweenBatches(t *testing.T) {
	src := newFakeSource()
	src.searches["Claude Monet"] = []int{1, 2, 3}
	for _, id := range []int{1, 2, 3} {
		src.addObject(id, "Claude Monet", true)
	}

	const pause = 30 * time.Millisecond
	start := time.Now()
	res, err := pausedResolver(src, 1, pause).ResolveArtist(context.Background(), "Claude Monet")
	if err != nil {
		t.Fatalf("ResolveArtist error: %v", err)
	}
	if res.Batches != 3 {
		t.Fatalf("Batches = %d, want 3", res.Batches)
	}
	if elapsed := time.Since(start); elapsed < 2*pause {
		t.Errorf("3 batches took %v, want at least %v (two pauses)", elapsed, 2*pause)
	}
}

func TestResolveArtist_NoPauseAfterLastBatch(t *testing.T) {
	src := newFakeSource()
	src.searches["Claude Monet"] = []int{1, 2}
	src.addObject(1, "Claude Monet", true)
	src.addObject(2, "Claude Monet", true)

	const pause = 2 * time.Second
	start := time.Now()
	res, err := pausedResolver(src, 20, pause).ResolveArtist(context.Background(), "Claude Monet")
	if err != nil {
		t.Fatalf("ResolveArtist error: %v", err)
	}
	if res.Batches != 1 {
		t.Fatalf("Batches = %d, want 1", res.Batches)
	}
	if elapsed := time.Since(start); elapsed >= pause {
		t.Errorf("single batch took %v, should not pause after it", elapsed)
	}
}

func TestCatalogBuilder_PausesAfterDepartmentBatches(t *testing.T) {
	src := testCatalogSource()
	const pause = 20 * time.Millisecond
	b := NewCatalogBuilder(NewCollection(src, nil), NewCatalog(), CatalogOptions{
		Departments:      []Department{{ID: 1, Name: "A"}},
		SeedTerms:        []string{},
		DepartmentSample: 4,
		DepartmentBatch:  2,
		DepartmentPause:  pause,
	})

	start := time.Now()
	if _, err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*pause {
		t.Errorf("2 department batches took %v, want at least %v", elapsed, 2*pause)
	}
}
