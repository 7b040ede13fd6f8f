package datasync

// Request is the free-form payload forwarded to the backend sync endpoint.
type Request map[string]any

// Result is the backend's raw sync report.
type Result map[string]any

// Count reads an integer counter from the report, e.g. "matches".
func (r Result) Count(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
