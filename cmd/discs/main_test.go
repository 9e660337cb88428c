package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/discs/internal/geom"
)

func TestParseDisk(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    geom.Disk
		wantErr error
	}{
		{"plain", "1,2,3", geom.NewDisk(geom.NewPoint(1, 2), 3), nil},
		{"spaces and negatives", " -1.5, 0 ,0.25", geom.NewDisk(geom.NewPoint(-1.5, 0), 0.25), nil},
		{"zero radius", "0,0,0", geom.NewDisk(geom.NewPoint(0, 0), 0), nil},
		{"negative radius", "0,0,-1", geom.Disk{}, geom.ErrNegativeRadius},
		{"infinite", "inf,0,1", geom.Disk{}, geom.ErrNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDisk(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("parseDisk(%q) error = %v, expected %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDisk(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("parseDisk(%q) = %v, expected %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDiskMalformed(t *testing.T) {
	for _, input := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		if _, err := parseDisk(input); err == nil {
			t.Errorf("parseDisk(%q) should fail", input)
		}
	}
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats([]string{"0", "-2.5", "1e3"})
	if err != nil {
		t.Fatalf("parseFloats failed: %v", err)
	}
	want := []float64{0, -2.5, 1000}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, expected %v", i, got[i], want[i])
		}
	}

	if _, err := parseFloats([]string{"1", "x"}); err == nil {
		t.Error("parseFloats should reject non-numbers")
	}
}
