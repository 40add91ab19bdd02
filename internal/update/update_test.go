package update

import (
	"context"
	"errors"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    int
	}{
		{"v0.1.0", "v0.2.0", -1},
		{"v1.0.0", "v1.0.0", 0},
		{"v2.0.0", "v1.0.0", 1},
		{"0.1.0", "v0.1.0", 0},
		{"v0.1.0", "0.1.0", 0},
		{"0.1.0-3-gabcdef", "0.1.0", -1},
		{"0.2.0", "0.1.0-3-gabcdef", 1},
		{"dev", "v1.0.0", -1},
		{"v1.0.0", "dev", 1},
		{"dev", "dev", 0},
		{"v0.0.1", "v0.0.2", -1},
		{"v0.1.0", "v0.0.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.current+"_vs_"+tt.latest, func(t *testing.T) {
			got := CompareVersions(tt.current, tt.latest)
			if got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	for v, want := range map[string]bool{"": true, "dev": true, "v0.3.0": false, "0.3.0-2-gabc": false} {
		if got := IsDevelopment(v); got != want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestCheckForUpdateSkipsDevelopmentBuilds(t *testing.T) {
	for _, v := range []string{"dev", ""} {
		rel, err := CheckForUpdate(context.Background(), v, "justinpbarnett/skillcat")
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", v, err)
		}
		if rel != nil {
			t.Errorf("%q: expected nil release, got %+v", v, rel)
		}
	}
}

func TestCheckForUpdateSkipsUnparseableVersion(t *testing.T) {
	rel, err := CheckForUpdate(context.Background(), "not-a-version", "justinpbarnett/skillcat")
	if err != nil || rel != nil {
		t.Errorf("expected (nil, nil), got (%+v, %v)", rel, err)
	}
}

func TestApplyRefusesDevelopmentBuild(t *testing.T) {
	_, err := Apply(context.Background(), "dev", "justinpbarnett/skillcat")
	if !errors.Is(err, ErrDevelopmentBuild) {
		t.Errorf("expected ErrDevelopmentBuild, got %v", err)
	}
}

func TestParseSemver(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"v1.0.0", false},
		{"1.0.0", false},
		{"0.1.0-3-gabcdef", false},
		{"v0.1.0-rc.1", false},
		{"dev", true},
		{"", true},
		{"not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseSemver(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseSemver(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
