package entitlement

import "encoding/json"

// ParseLegacyOverrides reads the denormalized override blob still present
// on older user rows. The blob maps feature key to a boolean (enabled), a
// number (limit) or an object {"enabled": bool, "limit": number}. Parsing
// is defensive: a malformed blob yields an empty set and a malformed value
// drops only that key. A corrupt override must never deny the user's
// otherwise valid entitlements.
func ParseLegacyOverrides(raw []byte) map[string]Override {
	if len(raw) == 0 {
		return nil
	}

	var blob map[string]json.RawMessage
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil
	}

	out := make(map[string]Override, len(blob))
	for key, val := range blob {
		if ov, ok := parseOverrideValue(val); ok {
			out[key] = ov
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseOverrideValue(raw json.RawMessage) (Override, bool) {
	// json.Unmarshal treats null as a no-op for scalar targets, so it
	// would slip through as a zero-value override.
	if string(raw) == "null" {
		return Override{}, false
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return Override{Enabled: &b}, true
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		limit := int(n)
		return Override{Limit: &limit}, true
	}

	var obj struct {
		Enabled *bool `json:"enabled"`
		Limit   *int  `json:"limit"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && (obj.Enabled != nil || obj.Limit != nil) {
		return Override{Enabled: obj.Enabled, Limit: obj.Limit}, true
	}

	return Override{}, false
}
