package paging

import (
	"context"
	"errors"
	"testing"

	"github.com/appoly/toolbox-go/toolbox/core"
)

// fixedFetch serves pages of a synthetic collection with the given
// total, recording the keys it was asked for.
func fixedFetch(perPageWant, lastPage, total int, keys *[]int) FetchFunc[int] {
	return func(ctx context.Context, perPage, page int) core.Result[core.PageData[int]] {
		if keys != nil {
			*keys = append(*keys, page)
		}
		from := (page-1)*perPageWant + 1
		to := page * perPageWant
		if to > total {
			to = total
		}
		items := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			items = append(items, i)
		}
		return core.Ok(core.PageData[int]{
			Items:       items,
			CurrentPage: page,
			LastPage:    lastPage,
			PerPage:     perPageWant,
			From:        from,
			To:          to,
			Total:       total,
		})
	}
}

func TestLoadFirstPage(t *testing.T) {
	var keys []int
	source := NewSource(Config{PageSize: 3}, fixedFetch(3, 3, 9, &keys))

	res := source.Load(context.Background(), 1)
	if !res.IsSuccess() {
		t.Fatalf("unexpected error: %v", res.Err())
	}

	page := res.Value()
	if len(page.Items) != 3 {
		t.Errorf("Items = %v, want 3 items", page.Items)
	}
	if page.ItemsBefore != 0 || page.ItemsAfter != 6 {
		t.Errorf("counts = %d/%d, want 0/6", page.ItemsBefore, page.ItemsAfter)
	}
	if page.PrevKey != NoKey {
		t.Errorf("PrevKey = %d, want none", page.PrevKey)
	}
	if page.NextKey != 2 {
		t.Errorf("NextKey = %d, want 2", page.NextKey)
	}
}

func TestLoadDefaultsToPageOne(t *testing.T) {
	var keys []int
	source := NewSource(Config{PageSize: 3}, fixedFetch(3, 3, 9, &keys))

	source.Load(context.Background(), NoKey)

	if len(keys) != 1 || keys[0] != 1 {
		t.Errorf("fetched keys = %v, want [1]", keys)
	}
}

func TestLoadMiddleAndLastPage(t *testing.T) {
	source := NewSource(Config{PageSize: 3}, fixedFetch(3, 3, 9, nil))

	middle := source.Load(context.Background(), 2).Value()
	if middle.PrevKey != 1 || middle.NextKey != 3 {
		t.Errorf("middle keys = %d/%d, want 1/3", middle.PrevKey, middle.NextKey)
	}
	if middle.ItemsBefore != 3 || middle.ItemsAfter != 3 {
		t.Errorf("middle counts = %d/%d, want 3/3", middle.ItemsBefore, middle.ItemsAfter)
	}

	last := source.Load(context.Background(), 3).Value()
	if last.PrevKey != 2 || last.NextKey != NoKey {
		t.Errorf("last keys = %d/%d, want 2/none", last.PrevKey, last.NextKey)
	}
	if last.ItemsAfter != 0 {
		t.Errorf("last ItemsAfter = %d, want 0", last.ItemsAfter)
	}
}

func TestLoadForwardsFetchError(t *testing.T) {
	cause := errors.New("connection reset")
	source := NewSource(Config{PageSize: 10}, func(ctx context.Context, perPage, page int) core.Result[core.PageData[int]] {
		return core.Err[core.PageData[int]](500, "boom", cause)
	})

	res := source.Load(context.Background(), 1)
	if !res.IsError() {
		t.Fatal("expected load error")
	}
	if res.Err().Message != "boom" {
		t.Errorf("Message = %q, want boom", res.Err().Message)
	}
	if res.Err().Code != 500 || res.Err().Cause != cause {
		t.Errorf("error = %+v, want code 500 with cause", res.Err())
	}
}

func TestRefreshKeyWithoutJumping(t *testing.T) {
	source := NewSource(Config{PageSize: 3}, fixedFetch(3, 3, 9, nil))

	tests := []struct {
		name    string
		state   State[int]
		wantKey int
		wantOK  bool
	}{
		{
			name:   "no anchor",
			state:  State[int]{PageSize: 3},
			wantOK: false,
		},
		{
			name: "anchor in middle page uses prevKey+1",
			state: State[int]{
				Pages: []Page[int]{
					{Items: []int{1, 2, 3}, NextKey: 2},
					{Items: []int{4, 5, 6}, PrevKey: 1, NextKey: 3, ItemsBefore: 3},
				},
				Anchor: 4, HasAnchor: true, PageSize: 3,
			},
			wantKey: 2,
			wantOK:  true,
		},
		{
			name: "first page falls back to nextKey-1",
			state: State[int]{
				Pages:  []Page[int]{{Items: []int{1, 2, 3}, NextKey: 2}},
				Anchor: 1, HasAnchor: true, PageSize: 3,
			},
			wantKey: 1,
			wantOK:  true,
		},
		{
			name: "single page with no neighbors",
			state: State[int]{
				Pages:  []Page[int]{{Items: []int{1, 2}}},
				Anchor: 0, HasAnchor: true, PageSize: 3,
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := source.RefreshKey(tt.state)
			if ok != tt.wantOK || (ok && key != tt.wantKey) {
				t.Errorf("RefreshKey() = (%d, %v), want (%d, %v)", key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestRefreshKeyWithJumping(t *testing.T) {
	source := NewSource(Config{PageSize: 10, EnableJumping: true}, fixedFetch(10, 10, 100, nil))

	tests := []struct {
		anchor  int
		wantKey int
	}{
		{anchor: 0, wantKey: 1},
		{anchor: 9, wantKey: 1},
		{anchor: 10, wantKey: 2},
		{anchor: 55, wantKey: 6},
	}

	for _, tt := range tests {
		key, ok := source.RefreshKey(State[int]{Anchor: tt.anchor, HasAnchor: true, PageSize: 10})
		if !ok || key != tt.wantKey {
			t.Errorf("RefreshKey(anchor=%d) = (%d, %v), want (%d, true)", tt.anchor, key, ok, tt.wantKey)
		}
	}
}

func TestInvalidateIsOneWayAndIdempotent(t *testing.T) {
	source := NewSource(Config{PageSize: 3}, fixedFetch(3, 3, 9, nil))

	var fired int
	source.OnInvalidate(func() { fired++ })

	if source.Invalid() {
		t.Fatal("new source should be valid")
	}
	source.Invalidate()
	source.Invalidate()

	if !source.Invalid() {
		t.Error("source should be invalid")
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, want exactly 1", fired)
	}
}

func TestOnInvalidateAfterInvalidationFiresImmediately(t *testing.T) {
	source := NewSource(Config{PageSize: 3}, fixedFetch(3, 3, 9, nil))
	source.Invalidate()

	var fired bool
	source.OnInvalidate(func() { fired = true })
	if !fired {
		t.Error("late callback should fire immediately on an invalid source")
	}
}
