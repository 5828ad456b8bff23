package platform

// Helpers for navigating a parsed YAML/JSON document as a generic tree.
// Each accessor returns an explicit zero value when the key is absent or
// the value has the wrong type, so "missing path" degrades to a default
// instead of an error.

// mapAt returns the map stored under key, or nil when absent or not a map.
func mapAt(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

// seqAt returns the sequence stored under key, or nil when absent or not a
// sequence.
func seqAt(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	seq, _ := m[key].([]any)
	return seq
}

// str returns the string stored under key, or "" when absent or not a
// string.
func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
