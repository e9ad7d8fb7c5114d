// Package entitlement computes the effective feature set of a user from
// the plan catalog and per-user overrides. Every caller that needs to know
// whether a user may use a feature goes through this package; nothing else
// in the codebase derives entitlements on its own.
package entitlement

import "encoding/json"

// Unlimited is the conventional limit value meaning "no cap".
const Unlimited = -1

// Grant is the effective value of one feature for one user. Limit nil
// means no numeric limit is defined for the feature, which is distinct
// from Unlimited (-1) and from an explicit zero allowance.
type Grant struct {
	Enabled bool
	Limit   *int
}

// Override is a partial grant layered above the plan value. Nil fields
// inherit the plan's value.
type Override struct {
	Enabled *bool
	Limit   *int
}

// FeatureSet is the resolved mapping of feature key to effective grant.
// A key absent from the set is treated as not granted by CanUse.
type FeatureSet map[string]Grant

// CanUse reports whether the feature is enabled. Absent keys and
// enabled=false are indistinguishable here.
func (s FeatureSet) CanUse(key string) bool {
	g, ok := s[key]
	return ok && g.Enabled
}

// Limit returns the numeric limit for the feature. The second return is
// false when the feature is absent or carries no numeric limit, so callers
// can tell "no limit configured" apart from an explicit 0 or Unlimited.
func (s FeatureSet) Limit(key string) (int, bool) {
	g, ok := s[key]
	if !ok || g.Limit == nil {
		return 0, false
	}
	return *g.Limit, true
}

// MarshalJSON renders the wire shape consumed by the frontend:
// {key: bool | number}. Features with a numeric limit serialize as the
// number, pure on/off features as the boolean.
func (s FeatureSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s))
	for key, g := range s {
		if g.Limit != nil {
			out[key] = *g.Limit
		} else {
			out[key] = g.Enabled
		}
	}
	return json.Marshal(out)
}
