package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestAdapter_LoadEmpty(t *testing.T) {
	a := newTestAdapter(t)
	got, err := a.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty cache, got %v", got)
	}
}

func TestAdapter_SaveAllReplaces(t *testing.T) {
	tests := []struct {
		name   string
		first  map[string]string
		second map[string]string
	}{
		{
			name:   "grows",
			first:  map[string]string{"a": "https://img.test/a.jpg"},
			second: map[string]string{"a": "https://img.test/a.jpg", "b": "https://img.test/b.jpg"},
		},
		{
			name:   "drops missing keys",
			first:  map[string]string{"a": "1", "b": "2"},
			second: map[string]string{"b": "3"},
		},
		{
			name:   "empty clears",
			first:  map[string]string{"a": "1"},
			second: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t)
			ctx := context.Background()
			if err := a.SaveAll(ctx, tt.first); err != nil {
				t.Fatalf("first save: %v", err)
			}
			if err := a.SaveAll(ctx, tt.second); err != nil {
				t.Fatalf("second save: %v", err)
			}
			got, err := a.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(got) != len(tt.second) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.second), got)
			}
			for k, v := range tt.second {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestAdapter_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jam.db")
	a, err := NewAdapter(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := a.SaveAll(context.Background(), map[string]string{"rec-1": "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	a.Close()

	b, err := NewAdapter(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()
	got, err := b.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got["rec-1"] != "u1" {
		t.Errorf("reloaded = %v", got)
	}
}
