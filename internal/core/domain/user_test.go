package domain

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		name      string
		requested string
		want      Role
	}{
		{"admin kept", "admin", RoleAdmin},
		{"user kept", "user", RoleUser},
		{"viewer kept", "viewer", RoleViewer},
		{"empty falls back", "", RoleUser},
		{"unknown falls back", "superuser", RoleUser},
		{"case-sensitive", "Admin", RoleUser},
		{"whitespace not trimmed", " admin", RoleUser},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeRole(tc.requested); got != tc.want {
				t.Fatalf("NormalizeRole(%q) = %q, want %q", tc.requested, got, tc.want)
			}
		})
	}
}
