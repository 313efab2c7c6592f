package endpoint

import "strconv"

// Reserved option keys recognized by endpoint construction. All other
// keys pass through untouched for protocol-specific use.
const (
	// OptionQueryPort overrides the derived query port.
	OptionQueryPort = "query_port"

	// OptionMasterServerPort names the master server port for protocols
	// that query a listing service alongside the game server.
	OptionMasterServerPort = "master_server_port"
)

// coerceInt converts the loose value types an options map picks up
// from YAML/JSON decoding (or direct construction) to an int. An empty
// string is treated as absent, matching an unset config field.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if n == float32(int(n)) {
			return int(n), true
		}
		return 0, false
	case string:
		if n == "" {
			return 0, false
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// optionPresent reports whether opts carries a non-empty value under
// key. An empty string counts as absent.
func optionPresent(opts map[string]any, key string) bool {
	v, ok := opts[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}
