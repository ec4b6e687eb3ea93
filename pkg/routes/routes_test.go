package routes

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/logsviewer/logsviewer/internal/errors"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

type stubView struct {
	Name string
}

func (v stubView) Render(Props) *vdom.VNode {
	return vdom.Text(v.Name)
}

func entry(path, label string) Entry {
	return Entry{Path: path, Exact: true, Title: "T " + path, View: stubView{Name: path}, Label: label}
}

func TestFlatten(t *testing.T) {
	a := entry("/", "A")
	b := entry("/b", "B")
	c := entry("/c", "C")
	d := entry("/d", "D")

	tests := []struct {
		name    string
		configs []Config
		want    []Entry
	}{
		{
			name:    "empty",
			configs: nil,
			want:    []Entry{},
		},
		{
			name:    "group spliced in place",
			configs: []Config{a, Group{Label: "G", Members: []Entry{b, c}}, d},
			want:    []Entry{a, b, c, d},
		},
		{
			name:    "already flat",
			configs: []Config{a, b, c},
			want:    []Entry{a, b, c},
		},
		{
			name:    "empty group contributes nothing",
			configs: []Config{Group{Label: "Empty"}, a},
			want:    []Entry{a},
		},
		{
			name:    "pointer forms",
			configs: []Config{&a, &Group{Label: "G", Members: []Entry{b}}, (*Entry)(nil)},
			want:    []Entry{a, b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.configs)
			if got == nil {
				t.Fatal("Flatten returned nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenCountAndIdempotence(t *testing.T) {
	configs := []Config{
		entry("/", "Dashboard"),
		Group{Label: "Import", Members: []Entry{entry("/import/logs", "Logs"), entry("/import/database", "Database")}},
		Group{Label: "Workloads", Members: []Entry{entry("/w/a", "A"), entry("/w/b", "B"), entry("/w/c", "C")}},
		entry("/nodes", "Nodes"),
	}

	// Standalone entries plus the sum of group sizes.
	want := 2 + 2 + 3

	first := Flatten(configs)
	if len(first) != want {
		t.Fatalf("len(Flatten()) = %d, want %d", len(first), want)
	}

	entriesOnly := make([]Config, len(first))
	for i, e := range first {
		entriesOnly[i] = e
	}
	if diff := cmp.Diff(first, Flatten(entriesOnly)); diff != "" {
		t.Errorf("flattening a flat list changed it (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, Flatten(configs)); diff != "" {
		t.Errorf("Flatten is not repeatable (-first +second):\n%s", diff)
	}
}

func TestNewTable(t *testing.T) {
	configs := []Config{
		entry("/", "Dashboard"),
		Group{Label: "Storage", Members: []Entry{entry("/storage/pvcs", "PVCs")}},
	}

	table, err := NewTable(configs)
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if table.Policy() != DuplicateReject {
		t.Errorf("Policy() = %v, want reject", table.Policy())
	}
	if len(table.Duplicates()) != 0 {
		t.Errorf("Duplicates() = %v, want none", table.Duplicates())
	}

	// Mutating returned slices must not affect the table.
	got := table.Flatten()
	got[0].Title = "changed"
	if table.Flatten()[0].Title == "changed" {
		t.Error("Flatten() exposes internal state")
	}
	cfgs := table.Configs()
	cfgs[0] = entry("/other", "Other")
	if diff := cmp.Diff(configs, table.Configs()); diff != "" {
		t.Errorf("Configs() exposes internal state:\n%s", diff)
	}
}

func TestNewTableEmpty(t *testing.T) {
	table, err := NewTable(nil)
	if err != nil {
		t.Fatalf("NewTable(nil) error: %v", err)
	}
	if got := table.Flatten(); got == nil || len(got) != 0 {
		t.Errorf("Flatten() = %#v, want empty slice", got)
	}
	if got := table.Menu(); len(got) != 0 {
		t.Errorf("Menu() = %v, want empty", got)
	}
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name      string
		configs   []Config
		wantCodes []string
	}{
		{
			name:      "duplicate path",
			configs:   []Config{entry("/a", "A"), Group{Label: "G", Members: []Entry{entry("/a", "A2")}}},
			wantCodes: []string{"E200"},
		},
		{
			name:      "relative path",
			configs:   []Config{entry("a", "A")},
			wantCodes: []string{"E201"},
		},
		{
			name:      "empty path",
			configs:   []Config{entry("", "A")},
			wantCodes: []string{"E201"},
		},
		{
			name:      "unlabeled group",
			configs:   []Config{Group{Members: []Entry{entry("/a", "A")}}},
			wantCodes: []string{"E202"},
		},
		{
			name:      "missing view",
			configs:   []Config{Entry{Path: "/a", Title: "A"}},
			wantCodes: []string{"E203"},
		},
		{
			name: "all problems reported together",
			configs: []Config{
				Entry{Path: "x"},
				Group{Members: []Entry{entry("/a", "A"), entry("/a", "B")}},
			},
			wantCodes: []string{"E201", "E202", "E203", "E200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.configs)
			if err == nil {
				t.Fatal("expected error")
			}
			if table != nil {
				t.Error("expected nil table on error")
			}
			for _, code := range tt.wantCodes {
				if !stderrors.Is(err, errors.New(code)) {
					t.Errorf("error does not contain %s: %v", code, err)
				}
			}
		})
	}
}

func TestDuplicateFirstMatch(t *testing.T) {
	first := entry("/a", "First")
	second := entry("/a", "Second")
	second.Title = "shadowed"

	table, err := NewTable([]Config{first, entry("/b", "B"), second},
		WithDuplicatePolicy(DuplicateFirstMatch))
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}
	if diff := cmp.Diff([]string{"/a"}, table.Duplicates()); diff != "" {
		t.Errorf("Duplicates() mismatch:\n%s", diff)
	}
	// Both entries stay in the flattened table; routing decides who wins.
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DuplicatePolicy
		wantErr bool
	}{
		{"", DuplicateReject, false},
		{"reject", DuplicateReject, false},
		{"first-match", DuplicateFirstMatch, false},
		{"last-wins", DuplicateReject, true},
	}
	for _, tt := range tests {
		got, err := ParseDuplicatePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuplicatePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDuplicatePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if DuplicatePolicy("bogus").String() != "reject" {
		t.Error("unknown policies should normalize to reject")
	}
}

func TestMenu(t *testing.T) {
	hidden := entry("/hidden", "")
	configs := []Config{
		entry("/", "Dashboard"),
		hidden,
		Group{Label: "Import", Members: []Entry{entry("/import/logs", "Logs"), hidden}},
		Group{Label: "Ghost", Members: []Entry{hidden}},
		entry("/nodes", "Nodes"),
	}

	want := []MenuItem{
		{Label: "Dashboard", Path: "/", Exact: true},
		{Label: "Import", Children: []MenuItem{
			{Label: "Logs", Path: "/import/logs", Exact: true},
		}},
		{Label: "Nodes", Path: "/nodes", Exact: true},
	}

	got := Menu(configs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Menu() mismatch (-want +got):\n%s", diff)
	}
	if !got[1].IsSection() || got[0].IsSection() {
		t.Error("IsSection() misreports groups")
	}

	// Hidden entries stay routable.
	found := false
	for _, e := range Flatten(configs) {
		if e.Path == "/hidden" {
			found = true
		}
	}
	if !found {
		t.Error("unlabeled entry missing from flattened table")
	}
}

func TestViewFunc(t *testing.T) {
	v := ViewFunc(func(p Props) *vdom.VNode {
		return vdom.Text(p.Title + ":" + p.Param("id"))
	})
	props := entry("/a", "A").Props()
	props.Params = map[string]string{"id": "7"}
	if got := v.Render(props).Text; !strings.HasSuffix(got, ":7") {
		t.Errorf("Render() text = %q", got)
	}
}
