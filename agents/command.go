package agents

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// parseCommand matches "<prefix><name> args" and returns the trimmed args.
func parseCommand(prefix, name, content string) (string, bool) {
	content = strings.TrimSpace(content)
	head, args, _ := strings.Cut(content, " ")
	if head != prefix+name {
		return "", false
	}
	return strings.TrimSpace(args), true
}

func sortedPairs(m map[string]string) []string {
	keys := slices.SortedFunc(maps.Keys(m), cmp.Compare[string])
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", k, m[k]))
	}
	return pairs
}
