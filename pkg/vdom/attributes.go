package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

func ID(id string) Attr                 { return attr("id", id) }
func Class(classes ...string) Attr      { return attr("class", strings.Join(classes, " ")) }
func Data(key, value string) Attr       { return attr("data-"+key, value) }
func TabIndex(index int) Attr           { return attr("tabindex", index) }
func Hidden() Attr                      { return attr("hidden", true) }
func TitleAttr(title string) Attr       { return attr("title", title) }
func Lang(lang string) Attr             { return attr("lang", lang) }
func Key(key string) Attr               { return attr("key", key) }
func Custom(key string, value any) Attr { return attr(key, value) }

// Accessibility attributes

func Role(role string) Attr           { return attr("role", role) }
func AriaLabel(label string) Attr     { return attr("aria-label", label) }
func AriaCurrent(value string) Attr   { return attr("aria-current", value) }
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// Link attributes

func Href(url string) Attr { return attr("href", url) }
func Rel(rel string) Attr  { return attr("rel", rel) }
