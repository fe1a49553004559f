package viewkeys

import (
	"reflect"
	"sync"
	"testing"
)

type captureNotifier struct {
	mu   sync.Mutex
	keys []string
}

func (c *captureNotifier) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, keys...)
}

func TestInvalidate_ForwardsToNotifier(t *testing.T) {
	cap := &captureNotifier{}
	SetNotifier(cap)
	defer SetNotifier(nil)

	Invalidate("/divisions/software")

	if len(cap.keys) != 1 || cap.keys[0] != "/divisions/software" {
		t.Errorf("captured keys = %v", cap.keys)
	}
}

func TestInvalidate_NoNotifierIsSafe(t *testing.T) {
	SetNotifier(nil)
	Invalidate("/divisions/software") // must not panic
}

func TestProjects_ScopedToDivision(t *testing.T) {
	keys := Projects("software")
	want := []string{
		"/projects",
		"/admin/projects",
		"/divisions/software",
		"/divisions/software/projects",
		"/admin/divisions/software",
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Projects(software) = %v, want %v", keys, want)
	}
}

func TestProjects_NoSlug(t *testing.T) {
	keys := Projects("")
	want := []string{"/projects", "/admin/projects"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Projects(\"\") = %v, want %v", keys, want)
	}
}

func TestMerge_Deduplicates(t *testing.T) {
	got := Merge(Projects("software"), Projects("network"))
	seen := make(map[string]int)
	for _, k := range got {
		seen[k]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Errorf("key %q appears %d times", k, n)
		}
	}
	if seen["/divisions/software"] != 1 || seen["/divisions/network"] != 1 {
		t.Errorf("merge missing division keys: %v", got)
	}
}
