package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		pattern string
		exact   bool
		path    string
		want    bool
		isExact bool
		params  map[string]string
	}{
		{"/", true, "/", true, true, nil},
		{"/", true, "/nodes", false, false, nil},
		{"/", false, "/nodes", true, false, nil},
		{"/", false, "/", true, true, nil},
		{"/nodes", true, "/nodes", true, true, nil},
		{"/nodes", true, "/nodes/n1", false, false, nil},
		{"/nodes", true, "/Nodes", false, false, nil},
		{"/nodes/:name", true, "/nodes/Worker-0", true, true, map[string]string{"name": "Worker-0"}},
		{"/workloads", false, "/workloads/pods", true, false, nil},
		{"/workloads", false, "/workloadsx", false, false, nil},
		{"/workloads", false, "/work", false, false, nil},
		{"/import/logs", true, "/import/database", false, false, nil},
		{"/nodes/:name", true, "/nodes/n1", true, true, map[string]string{"name": "n1"}},
		{"/nodes/:name", true, "/nodes", false, false, nil},
		{"/ns/:ns/pods/:pod", false, "/ns/default/pods/web/logs", true, false,
			map[string]string{"ns": "default", "pod": "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			m, ok := Compile(tt.pattern, tt.exact).Match(tt.path)
			if ok != tt.want {
				t.Fatalf("Match(%q) = %v, want %v", tt.path, ok, tt.want)
			}
			if !ok {
				return
			}
			if m.IsExact != tt.isExact {
				t.Errorf("IsExact = %v, want %v", m.IsExact, tt.isExact)
			}
			if m.URL != tt.path || m.Pattern != tt.pattern {
				t.Errorf("Match = %+v", m)
			}
			if diff := cmp.Diff(tt.params, m.Params); diff != "" {
				t.Errorf("Params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		href    string
		exact   bool
		current string
		want    bool
	}{
		{"/", true, "/", true},
		{"/", true, "/nodes", false},
		{"/import/logs", true, "/import/logs/", true},
		{"/import", false, "/import/logs", true},
		{"/nodes", true, "//evil.com", false},
	}
	for _, tt := range tests {
		if got := IsActive(tt.href, tt.exact, tt.current); got != tt.want {
			t.Errorf("IsActive(%q, %v, %q) = %v, want %v", tt.href, tt.exact, tt.current, got, tt.want)
		}
	}
}
