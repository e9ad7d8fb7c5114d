package entitlement

import (
	"photofolio-be/internal/entity"
)

// PlanBase builds the base feature set from a plan's grants. Grants whose
// feature no longer exists in the catalog arrive with an empty key and are
// skipped rather than failing the whole resolution.
func PlanBase(grants []*entity.PlanFeature) FeatureSet {
	set := make(FeatureSet, len(grants))
	for _, g := range grants {
		if g.FeatureKey == "" {
			continue
		}
		grant := Grant{Enabled: g.Enabled}
		if g.Limit != nil {
			v := *g.Limit
			grant.Limit = &v
		}
		set[g.FeatureKey] = grant
	}
	return set
}

// Overlay applies per-user overrides on top of the base set, field by
// field: an override that only sets a limit keeps the plan's enabled flag,
// and vice versa. An override for a key the plan never granted creates the
// grant.
func Overlay(base FeatureSet, overrides map[string]Override) FeatureSet {
	if len(overrides) == 0 {
		return base
	}
	for key, ov := range overrides {
		grant := base[key]
		if ov.Enabled != nil {
			grant.Enabled = *ov.Enabled
		}
		if ov.Limit != nil {
			v := *ov.Limit
			grant.Limit = &v
		}
		base[key] = grant
	}
	return base
}

// SuperadminAll grants every catalog feature unconditionally: enabled with
// an unlimited cap. Iterating the live catalog keeps features added later
// covered without code changes.
func SuperadminAll(features []*entity.Feature) FeatureSet {
	set := make(FeatureSet, len(features))
	for _, f := range features {
		limit := Unlimited
		set[f.Key] = Grant{Enabled: true, Limit: &limit}
	}
	return set
}

// MergeOverrideSources combines the two override representations. Rows are
// the audited, newer mechanism and win over the legacy JSON blob when both
// define the same key.
func MergeOverrideSources(legacy, rows map[string]Override) map[string]Override {
	if len(legacy) == 0 {
		return rows
	}
	merged := make(map[string]Override, len(legacy)+len(rows))
	for key, ov := range legacy {
		merged[key] = ov
	}
	for key, ov := range rows {
		merged[key] = ov
	}
	return merged
}

// FromOverrideRows normalizes override rows into the merge shape. Rows
// whose feature vanished from the catalog carry an empty key and are
// skipped.
func FromOverrideRows(rows []*entity.FeatureOverride) map[string]Override {
	out := make(map[string]Override, len(rows))
	for _, row := range rows {
		if row.FeatureKey == "" {
			continue
		}
		out[row.FeatureKey] = Override{Enabled: row.Enabled, Limit: row.Limit}
	}
	return out
}
