// Package style holds the presentation collaborators of the elements: class
// name merging, variant resolution, theme tokens, and the shared style sheet
// every element adopts before its first render.
package style

import "strings"

// CN joins class names, filtering empty strings and dropping repeated
// classes. The first occurrence of a class keeps its position.
func CN(classes ...string) string {
	var result []string
	seen := make(map[string]bool)
	for _, c := range classes {
		for _, f := range strings.Fields(c) {
			if seen[f] {
				continue
			}
			seen[f] = true
			result = append(result, f)
		}
	}
	return strings.Join(result, " ")
}
