package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access": "",
		},
		"lifecycle": map[string]any{
			"notifyCascadeCancel": true,
		},
		"storage": map[string]any{
			"path": "brokerage.db",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "LIFECYCLE_NOTIFYCASCADECANCEL", want: "lifecycle.notifyCascadeCancel"},
		{envKey: "STORAGE_PATH", want: "storage.path"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
