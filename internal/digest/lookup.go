package digest

// FirstPresent returns the value stored under the first of keys present in m,
// together with the key that matched. ok is false when none of the keys exist;
// callers supply their own default in that case.
func FirstPresent[V any](m map[string]V, keys ...string) (value V, key string, ok bool) {
	for _, k := range keys {
		if v, found := m[k]; found {
			return v, k, true
		}
	}
	return value, "", false
}
