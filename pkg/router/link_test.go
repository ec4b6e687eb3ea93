package router

import (
	"testing"

	"github.com/logsviewer/logsviewer/pkg/render"
	"github.com/logsviewer/logsviewer/pkg/vdom"
)

func TestLink(t *testing.T) {
	r := render.NewRenderer(render.RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "link",
			node: Link("/nodes", vdom.Text("Nodes")),
			want: `<a data-link="true" href="/nodes">Nodes</a>`,
		},
		{
			name: "inactive nav link",
			node: NavLink("/nodes", false, vdom.Text("Nodes")),
			want: `<a data-link="true" href="/nodes">Nodes</a>`,
		},
		{
			name: "active nav link",
			node: NavLink("/nodes", true, vdom.Text("Nodes")),
			want: `<a aria-current="page" class="active" data-link="true" href="/nodes">Nodes</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderToString(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}
