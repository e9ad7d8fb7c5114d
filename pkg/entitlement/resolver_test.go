package entitlement

import (
	"encoding/json"
	"testing"

	"photofolio-be/internal/entity"

	"github.com/google/uuid"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestPlanBase(t *testing.T) {
	grants := []*entity.PlanFeature{
		{FeatureKey: "calendarSync", Enabled: true},
		{FeatureKey: "maxScenaProjects", Enabled: true, Limit: intPtr(Unlimited)},
		{FeatureKey: "", Enabled: true}, // orphaned grant, feature gone from catalog
	}

	set := PlanBase(grants)

	if len(set) != 2 {
		t.Fatalf("set size = %d, want 2 (orphan skipped)", len(set))
	}
	if !set.CanUse("calendarSync") {
		t.Error("calendarSync should be enabled")
	}
	if limit, ok := set.Limit("maxScenaProjects"); !ok || limit != Unlimited {
		t.Errorf("maxScenaProjects limit = %d, %v; want -1, true", limit, ok)
	}
	if _, ok := set.Limit("calendarSync"); ok {
		t.Error("calendarSync has no numeric limit, Limit must report false")
	}
}

func TestOverlayFieldLevel(t *testing.T) {
	tests := []struct {
		name        string
		base        FeatureSet
		overrides   map[string]Override
		key         string
		wantEnabled bool
		wantLimit   *int
	}{
		{
			name:        "limit-only override keeps plan enabled flag",
			base:        FeatureSet{"maxScenaProjects": {Enabled: true, Limit: intPtr(Unlimited)}},
			overrides:   map[string]Override{"maxScenaProjects": {Limit: intPtr(3)}},
			key:         "maxScenaProjects",
			wantEnabled: true,
			wantLimit:   intPtr(3),
		},
		{
			name:        "enabled-only override keeps plan limit",
			base:        FeatureSet{"calendarSync": {Enabled: false, Limit: intPtr(5)}},
			overrides:   map[string]Override{"calendarSync": {Enabled: boolPtr(true)}},
			key:         "calendarSync",
			wantEnabled: true,
			wantLimit:   intPtr(5),
		},
		{
			name:        "override creates grant absent from plan",
			base:        FeatureSet{},
			overrides:   map[string]Override{"betaGallery": {Enabled: boolPtr(true)}},
			key:         "betaGallery",
			wantEnabled: true,
		},
		{
			name:        "explicit zero limit is preserved",
			base:        FeatureSet{"maxGalleries": {Enabled: true, Limit: intPtr(10)}},
			overrides:   map[string]Override{"maxGalleries": {Limit: intPtr(0)}},
			key:         "maxGalleries",
			wantEnabled: true,
			wantLimit:   intPtr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlay(tt.base, tt.overrides)

			g, ok := got[tt.key]
			if !ok {
				t.Fatalf("key %q absent after overlay", tt.key)
			}
			if g.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", g.Enabled, tt.wantEnabled)
			}
			limit, hasLimit := got.Limit(tt.key)
			if tt.wantLimit == nil {
				if hasLimit {
					t.Errorf("Limit = %d, want none", limit)
				}
			} else if !hasLimit || limit != *tt.wantLimit {
				t.Errorf("Limit = %d, %v; want %d, true", limit, hasLimit, *tt.wantLimit)
			}
		})
	}
}

func TestSuperadminAllCoversLiveCatalog(t *testing.T) {
	features := []*entity.Feature{
		{Id: uuid.New(), Key: "calendarSync"},
		{Id: uuid.New(), Key: "maxScenaProjects"},
		{Id: uuid.New(), Key: "addedAfterPlanAssignment"},
	}

	set := SuperadminAll(features)

	if len(set) != len(features) {
		t.Fatalf("set size = %d, want %d", len(set), len(features))
	}
	for _, f := range features {
		if !set.CanUse(f.Key) {
			t.Errorf("%s should be enabled for superadmin", f.Key)
		}
		if limit, ok := set.Limit(f.Key); !ok || limit != Unlimited {
			t.Errorf("%s limit = %d, %v; want unlimited", f.Key, limit, ok)
		}
	}
}

func TestMergeOverrideSourcesRowsWin(t *testing.T) {
	legacy := map[string]Override{
		"calendarSync":     {Enabled: boolPtr(true)},
		"maxScenaProjects": {Limit: intPtr(10)},
	}
	rows := map[string]Override{
		"maxScenaProjects": {Limit: intPtr(3)},
	}

	merged := MergeOverrideSources(legacy, rows)

	if got := merged["maxScenaProjects"].Limit; got == nil || *got != 3 {
		t.Errorf("row override must win on key collision, got %v", got)
	}
	if got := merged["calendarSync"].Enabled; got == nil || !*got {
		t.Error("legacy-only key must survive the merge")
	}
}

func TestFeatureSetMarshalJSON(t *testing.T) {
	set := FeatureSet{
		"calendarSync":     {Enabled: true},
		"bookingConfig":    {Enabled: false},
		"maxScenaProjects": {Enabled: true, Limit: intPtr(3)},
		"maxGalleries":     {Enabled: true, Limit: intPtr(Unlimited)},
	}

	raw, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out["calendarSync"] != true {
		t.Errorf("calendarSync = %v, want true", out["calendarSync"])
	}
	if out["bookingConfig"] != false {
		t.Errorf("bookingConfig = %v, want false", out["bookingConfig"])
	}
	if out["maxScenaProjects"] != float64(3) {
		t.Errorf("maxScenaProjects = %v, want 3", out["maxScenaProjects"])
	}
	if out["maxGalleries"] != float64(-1) {
		t.Errorf("maxGalleries = %v, want -1", out["maxGalleries"])
	}
}

func TestCanUseAbsentKey(t *testing.T) {
	set := FeatureSet{"calendarSync": {Enabled: false}}

	if set.CanUse("newFeature") {
		t.Error("absent key must behave as not granted")
	}
	if set.CanUse("calendarSync") {
		t.Error("disabled key must not be usable")
	}
	if _, ok := set.Limit("newFeature"); ok {
		t.Error("absent key must report no limit defined")
	}
}
