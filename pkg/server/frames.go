package server

// Frame types.
const (
	FrameNavigate  = "navigate"
	FrameRender    = "render"
	FrameTitle     = "title"
	FrameFocus     = "focus"
	FrameErrorType = "error"
)

// ClientFrame is a message from the thin client.
type ClientFrame struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// ServerFrame is a message to the thin client. Only the fields relevant
// to Type are set.
type ServerFrame struct {
	Type    string `json:"type"`
	Path    string `json:"path,omitempty"`
	HTML    string `json:"html,omitempty"`
	Title   string `json:"title,omitempty"`
	ID      string `json:"id,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
