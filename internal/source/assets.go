package source

import "strings"

const DefaultPlaceholder = "/placeholder.jpg"

// AssetResolver turns image references into public URLs.
type AssetResolver struct {
	// BaseURL is the public origin of the asset server. Empty disables
	// resolution of opaque file ids.
	BaseURL string
	// Prefix is joined between BaseURL and the reference. Directus serves
	// files under "/assets/".
	Prefix string
	// Placeholder replaces any reference that cannot be resolved.
	Placeholder string
}

// Resolve returns ref unchanged when it is an absolute http(s) URL, joins it
// with BaseURL otherwise, and falls back to the placeholder when ref is empty
// or no base URL is configured.
func (a AssetResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	case ref == "", a.BaseURL == "":
		return a.placeholder()
	}
	url := strings.TrimRight(a.BaseURL, "/")
	if prefix := strings.Trim(a.Prefix, "/"); prefix != "" {
		url += "/" + prefix
	}
	return url + "/" + strings.TrimLeft(ref, "/")
}

func (a AssetResolver) placeholder() string {
	if a.Placeholder == "" {
		return DefaultPlaceholder
	}
	return a.Placeholder
}
