package cache

import (
	"errors"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []any
		want  string
	}{
		{name: "no_parts", parts: nil, want: "item"},
		{name: "single_id", parts: []any{int64(19019)}, want: "item:19019"},
		{name: "region_and_id", parts: []any{"eu", 171276}, want: "item:eu:171276"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key("item", tt.parts...); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetch_FillsOnMiss(t *testing.T) {
	c := New(time.Minute)

	calls := 0
	fill := func() (string, error) {
		calls++
		return "value", nil
	}

	got, err := Fetch(c, "k", time.Minute, fill)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "value" {
		t.Errorf("Fetch() = %q, want %q", got, "value")
	}

	// Second fetch must hit the cache.
	if _, err := Fetch(c, "k", time.Minute, fill); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestFetch_ErrorNotCached(t *testing.T) {
	c := New(time.Minute)

	calls := 0
	fill := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("boom")
		}
		return 42, nil
	}

	if _, err := Fetch(c, "k", time.Minute, fill); err == nil {
		t.Fatal("Fetch() expected error on first call")
	}

	got, err := Fetch(c, "k", time.Minute, fill)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Fetch() = %d, want 42", got)
	}
	if calls != 2 {
		t.Errorf("fill called %d times, want 2", calls)
	}
}

func TestSetWithTTL_Expiry(t *testing.T) {
	c := New(time.Minute)
	c.SetWithTTL("k", "v", 10*time.Millisecond)

	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected entry before expiry")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}
