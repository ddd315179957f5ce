// Package weaklist holds the list of known-weak passwords.
package weaklist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed weak_passwords.txt
var defaultRaw string

// List is an immutable set of weak passwords keyed by their lowercase form.
type List struct {
	entries map[string]struct{}
}

var defaultList = sync.OnceValue(func() *List {
	list, err := Parse(strings.NewReader(defaultRaw))
	if err != nil {
		panic(fmt.Sprintf("weaklist: embedded list: %v", err))
	}
	return list
})

// Default returns the embedded weak-password list. It is parsed on first use
// and shared afterwards.
func Default() *List {
	return defaultList()
}

// Parse reads one password per line. Blank lines and lines starting with '#'
// are skipped.
func Parse(r io.Reader) (*List, error) {
	entries := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weak list: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("weak list is empty")
	}
	return &List{entries: entries}, nil
}

// Contains reports whether password matches an entry, ignoring case.
// Only whole-string matches count.
func (l *List) Contains(password string) bool {
	if l == nil {
		return false
	}
	_, ok := l.entries[strings.ToLower(password)]
	return ok
}

// Len returns the number of distinct entries.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns a sorted copy of the lowercase entries.
func (l *List) Entries() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.entries))
	for entry := range l.entries {
		out = append(out, entry)
	}
	sort.Strings(out)
	return out
}
