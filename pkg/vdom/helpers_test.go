package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)

	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(Div(), nil, "text", []*VNode{Span(), nil, P()})
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 4 {
		t.Errorf("Children len = %v, want 4", len(node.Children))
	}
}

func TestCreateElement(t *testing.T) {
	node := Div(
		ID("main"),
		Class("a", "b"),
		Key("k1"),
		nil,
		"hello",
		[]Attr{Role("region"), {}},
		[]any{AriaLabel("content"), Span()},
	)

	if node.Tag != "div" {
		t.Errorf("Tag = %q, want %q", node.Tag, "div")
	}
	if node.ID() != "main" {
		t.Errorf("ID() = %q, want %q", node.ID(), "main")
	}
	if node.Props["class"] != "a b" {
		t.Errorf("class = %v, want %q", node.Props["class"], "a b")
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want %q", node.Key, "k1")
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored as a prop")
	}
	if node.Props["role"] != "region" || node.Props["aria-label"] != "content" {
		t.Errorf("Props = %v", node.Props)
	}
	if len(node.Children) != 2 {
		t.Errorf("Children len = %d, want 2", len(node.Children))
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "", "c"}
	nodes := Range(items, func(item string, i int) *VNode {
		if item == "" {
			return nil
		}
		return Li(item)
	})
	if len(nodes) != 2 {
		t.Errorf("len = %d, want 2", len(nodes))
	}
}

func TestFindByID(t *testing.T) {
	target := Main(ID("primary-app-container"), TabIndex(-1))
	tree := Div(
		Nav(ID("nav"), Ul(Li(A(Href("/"), "Dashboard")))),
		Fragment(Section(target)),
	)

	tests := []struct {
		name string
		id   string
		want *VNode
	}{
		{"inside fragment", "primary-app-container", target},
		{"missing", "nope", nil},
		{"empty id", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindByID(tree, tt.id); got != tt.want {
				t.Errorf("FindByID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if FindByID(nil, "nav") != nil {
		t.Error("FindByID(nil) should return nil")
	}
}

func TestWalkStops(t *testing.T) {
	tree := Div(P("one"), P("two"), P("three"))
	visited := 0
	Walk(tree, func(n *VNode) bool {
		visited++
		return n.Tag != "p"
	})
	// div, then first p stops the walk
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
