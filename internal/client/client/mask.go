package client

import "sort"

// UpdateMask returns the leaf paths of a partial object, dot-joined and in
// depth-first order with keys sorted at each level. Nested maps are walked;
// every other value, slices and nil included, is a leaf. Empty maps add
// nothing.
//
//	UpdateMask(map[string]any{"name": "x", "linked": map[string]any{"albums": []string{"a"}}})
//	// ["linked.albums", "name"]
func UpdateMask(patch map[string]any) []string {
	var paths []string
	collectPaths(patch, "", &paths)
	return paths
}

func collectPaths(obj map[string]any, prefix string, paths *[]string) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := obj[k].(map[string]any); ok {
			collectPaths(nested, path, paths)
			continue
		}
		*paths = append(*paths, path)
	}
}
