package entitlement

import "testing"

func TestParseLegacyOverrides(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKeys int
		check    func(t *testing.T, out map[string]Override)
	}{
		{
			name:     "boolean value becomes enabled override",
			raw:      `{"calendarSync": true}`,
			wantKeys: 1,
			check: func(t *testing.T, out map[string]Override) {
				if ov := out["calendarSync"]; ov.Enabled == nil || !*ov.Enabled {
					t.Errorf("calendarSync = %+v, want enabled", ov)
				}
			},
		},
		{
			name:     "number value becomes limit override",
			raw:      `{"maxScenaProjects": 5}`,
			wantKeys: 1,
			check: func(t *testing.T, out map[string]Override) {
				if ov := out["maxScenaProjects"]; ov.Limit == nil || *ov.Limit != 5 {
					t.Errorf("maxScenaProjects = %+v, want limit 5", ov)
				}
			},
		},
		{
			name:     "object value carries both fields",
			raw:      `{"maxGalleries": {"enabled": true, "limit": -1}}`,
			wantKeys: 1,
			check: func(t *testing.T, out map[string]Override) {
				ov := out["maxGalleries"]
				if ov.Enabled == nil || !*ov.Enabled {
					t.Errorf("enabled = %v, want true", ov.Enabled)
				}
				if ov.Limit == nil || *ov.Limit != Unlimited {
					t.Errorf("limit = %v, want -1", ov.Limit)
				}
			},
		},
		{
			name:     "object with only limit leaves enabled nil",
			raw:      `{"maxScenaProjects": {"limit": 3}}`,
			wantKeys: 1,
			check: func(t *testing.T, out map[string]Override) {
				ov := out["maxScenaProjects"]
				if ov.Enabled != nil {
					t.Errorf("enabled = %v, want nil (inherit plan)", *ov.Enabled)
				}
				if ov.Limit == nil || *ov.Limit != 3 {
					t.Errorf("limit = %v, want 3", ov.Limit)
				}
			},
		},
		{
			name:     "malformed blob degrades to empty",
			raw:      `"not an object"`,
			wantKeys: 0,
		},
		{
			name:     "invalid json degrades to empty",
			raw:      `{broken`,
			wantKeys: 0,
		},
		{
			name:     "malformed value drops only that key",
			raw:      `{"calendarSync": true, "weird": ["array"]}`,
			wantKeys: 1,
		},
		{
			name:     "empty blob",
			raw:      ``,
			wantKeys: 0,
		},
		{
			name:     "null values are ignored",
			raw:      `{"calendarSync": null}`,
			wantKeys: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ParseLegacyOverrides([]byte(tt.raw))

			if len(out) != tt.wantKeys {
				t.Fatalf("parsed %d keys, want %d (%v)", len(out), tt.wantKeys, out)
			}
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}
