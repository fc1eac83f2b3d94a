package gcputils

import (
	"fmt"
	"sort"
	"strings"
)

// NameFromSelfLink extracts the short resource name from a self link such as
// https://www.googleapis.com/compute/v1/projects/p/zones/us-central1-a.
// A string without path separators is returned unchanged, so already-short
// names are safe to pass through.
func NameFromSelfLink(selfLink string) string {
	if i := strings.LastIndex(selfLink, "/"); i >= 0 {
		return selfLink[i+1:]
	}
	return selfLink
}

// BuildLabelsFilter builds an instance list filter expression matching every
// provided label. Keys are emitted in sorted order so the expression is
// deterministic.
func BuildLabelsFilter(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	clauses := make([]string, 0, len(keys))
	for _, key := range keys {
		clauses = append(clauses, fmt.Sprintf("(labels.%s eq %s)", key, labels[key]))
	}
	return strings.Join(clauses, " AND ")
}
