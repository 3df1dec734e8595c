package model

import (
	"Atelier/internal/pkg/consts"
	"testing"
)

func TestAdUnitMatchesDevice(t *testing.T) {
	tests := []struct {
		name    string
		mobile  bool
		desktop bool
		device  string
		want    bool
	}{
		{"mobile unit on mobile", true, false, consts.DeviceMobile, true},
		{"mobile unit on desktop", true, false, consts.DeviceDesktop, false},
		{"desktop unit on mobile", false, true, consts.DeviceMobile, false},
		{"desktop unit on desktop", false, true, consts.DeviceDesktop, true},
		{"unknown device falls to desktop", false, true, "tablet", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := &AdUnit{ShowOnMobile: tt.mobile, ShowOnDesktop: tt.desktop}
			if got := unit.MatchesDevice(tt.device); got != tt.want {
				t.Fatalf("MatchesDevice(%q) = %v, want %v", tt.device, got, tt.want)
			}
		})
	}
}

func TestAdUnitMatchesPage(t *testing.T) {
	tests := []struct {
		name    string
		show    string
		exclude string
		path    string
		want    bool
	}{
		{"empty rules match everything", "", "", "/projects/1/", true},
		{"include hit", "/blog/", "", "/blog/hello", true},
		{"include miss", "/blog/", "", "/projects/1/", false},
		{"exclude beats include", "/blog/", "/blog/private", "/blog/private/x", false},
		{"exclude only", "", "/admin", "/admin/users", false},
		{"multiple include patterns", "/blog/, /projects/", "", "/projects/2/", true},
		{"whitespace patterns ignored", " , ", "", "/anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := &AdUnit{PagesToShow: tt.show, PagesToExclude: tt.exclude}
			if got := unit.MatchesPage(tt.path); got != tt.want {
				t.Fatalf("MatchesPage(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCalcCTR(t *testing.T) {
	if got := CalcCTR(0, 10); got != 0 {
		t.Fatalf("zero impressions should give 0, got %v", got)
	}
	if got := CalcCTR(100, 25); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := CalcCTR(3, 1); got < 33.3 || got > 33.4 {
		t.Fatalf("expected about 33.33, got %v", got)
	}
}
