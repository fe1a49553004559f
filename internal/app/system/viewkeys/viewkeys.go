// Package viewkeys names the rendered views affected by a mutation.
//
// Every admin mutation computes the set of view keys whose cached
// renderings are stale after the write, and hands them to the installed
// Notifier. Keys are the public/admin page paths derived from the entity
// ("/divisions/software", "/admin/projects"), which keeps the mutation
// layer decoupled from whatever cache or CDN sits in front of the site.
package viewkeys

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier receives the view keys invalidated by a mutation.
type Notifier interface {
	Invalidate(keys ...string)
}

var (
	mu       sync.RWMutex
	notifier Notifier
)

// SetNotifier installs the notifier used by Invalidate. Called once from
// bootstrap; safe to leave unset in tests (signals are dropped).
func SetNotifier(n Notifier) {
	mu.Lock()
	defer mu.Unlock()
	notifier = n
}

// Invalidate forwards keys to the installed notifier, if any.
func Invalidate(keys ...string) {
	mu.RLock()
	n := notifier
	mu.RUnlock()
	if n != nil && len(keys) > 0 {
		n.Invalidate(keys...)
	}
}

// LogNotifier records invalidation signals in the application log. It is
// the default notifier: deployments that put a cache in front of the site
// replace it with one that purges the named paths.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) Invalidate(keys ...string) {
	n.Log.Info("views invalidated", zap.Strings("keys", keys))
}

// Division returns the keys affected by any change to a division's own
// fields: its public pages and the admin division lists.
func Division(slug string) []string {
	return []string{
		"/",
		"/divisions",
		"/divisions/" + slug,
		"/admin/divisions",
		"/admin/divisions/" + slug,
	}
}

// DivisionList returns the keys for division create/delete, which change
// every page that enumerates divisions.
func DivisionList() []string {
	return []string{"/", "/divisions", "/tech-stack", "/admin/divisions"}
}

// Projects returns the keys affected by a project mutation within the
// division identified by slug.
func Projects(slug string) []string {
	keys := []string{"/projects", "/admin/projects"}
	if slug != "" {
		keys = append(keys,
			"/divisions/"+slug,
			"/divisions/"+slug+"/projects",
			"/admin/divisions/"+slug,
		)
	}
	return keys
}

// Members returns the keys affected by a member mutation.
func Members(slug string) []string {
	keys := []string{"/admin/members"}
	if slug != "" {
		keys = append(keys,
			"/divisions/"+slug,
			"/divisions/"+slug+"/members",
			"/admin/divisions/"+slug,
		)
	}
	return keys
}

// Achievements returns the keys affected by an achievement mutation.
func Achievements(slug string) []string {
	keys := []string{"/achievements", "/admin/achievements"}
	if slug != "" {
		keys = append(keys,
			"/divisions/"+slug,
			"/divisions/"+slug+"/achievements",
			"/admin/divisions/"+slug,
		)
	}
	return keys
}

// TechStacks returns the keys affected by a tech stack mutation.
func TechStacks(slug string) []string {
	keys := []string{"/tech-stack", "/admin/tech-stack"}
	if slug != "" {
		keys = append(keys, "/divisions/"+slug, "/admin/divisions/"+slug)
	}
	return keys
}

// Merge concatenates key sets, dropping duplicates while preserving
// first-seen order. Used when an update moves a child between divisions
// and both the old and new division's views are stale.
func Merge(sets ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range sets {
		for _, k := range set {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
