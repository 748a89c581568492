package settings

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// ReservedMatcher reports whether a request url is reserved, i.e. never routed to content.
//
// Entries come from the comma separated ReservedUrls and ReservedPaths lists. Each entry is
// resolved with ResolveURL and compared case-insensitively. A reserved url matches exactly; a
// reserved path also reserves everything below it. Entries may use glob wildcards: "*" within a
// segment and "**" across segments.
type ReservedMatcher struct {
	patterns []glob.Glob
}

// NewReservedMatcher compiles the reserved entries of s.
func NewReservedMatcher(s *GlobalSettings) (*ReservedMatcher, error) {
	var patterns []string

	for _, entry := range splitReserved(s.ReservedUrls) {
		patterns = append(patterns, strings.ToLower(ResolveURL(entry)))
	}

	for _, entry := range splitReserved(s.ReservedPaths) {
		dir := strings.TrimSuffix(strings.ToLower(ResolveURL(entry)), "/")
		patterns = append(patterns, dir, dir+"/**")
	}

	matcher := &ReservedMatcher{patterns: make([]glob.Glob, 0, len(patterns))}

	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: reserved entry %q: %w", ErrInvalidSettings, pattern, err)
		}

		matcher.patterns = append(matcher.patterns, compiled)
	}

	return matcher, nil
}

// Match reports whether url is reserved. Query strings and fragments are ignored.
func (m *ReservedMatcher) Match(url string) bool {
	path := normalizeRequestPath(url)

	for _, pattern := range m.patterns {
		if pattern.Match(path) {
			return true
		}
	}

	return false
}

// IsReservedPathOrURL reports whether url is reserved by s.
// The compiled matcher is shared by every GlobalSettings with the same reserved lists. Invalid
// entries are logged once and make every url unreserved; use NewReservedMatcher to get the error.
func (s *GlobalSettings) IsReservedPathOrURL(url string) bool {
	matcher, err := reservedMatcherFor(s, slog.Default())
	if err != nil {
		return false
	}

	return matcher.Match(url)
}

type reservedKey struct {
	urls  string
	paths string
}

type compiledReserved struct {
	matcher *ReservedMatcher
	err     error
}

// Keyed by reservedKey. Entries are never evicted; settings documents hold few distinct lists.
//
//nolint:gochecknoglobals // compiled matchers are immutable and shared across settings values.
var reservedMatchers sync.Map

func reservedMatcherFor(s *GlobalSettings, logger *slog.Logger) (*ReservedMatcher, error) {
	key := reservedKey{urls: s.ReservedUrls, paths: s.ReservedPaths}

	if cached, ok := reservedMatchers.Load(key); ok {
		compiled, _ := cached.(*compiledReserved)

		return compiled.matcher, compiled.err
	}

	matcher, err := NewReservedMatcher(s)

	cached, loaded := reservedMatchers.LoadOrStore(key, &compiledReserved{matcher: matcher, err: err})
	compiled, _ := cached.(*compiledReserved)

	if !loaded && compiled.err != nil {
		logger.Warn("reserved entries rejected, no url is reserved",
			slog.String("reservedUrls", s.ReservedUrls),
			slog.String("reservedPaths", s.ReservedPaths),
			slog.Any("error", compiled.err))
	}

	return compiled.matcher, compiled.err
}

func splitReserved(list string) []string {
	var entries []string

	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

func normalizeRequestPath(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}

	url = strings.ToLower(ResolveURL(url))
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}

	return url
}
