package usertext

import "net/url"

// safeLinkFallback is substituted for any link target that fails the
// safety check. It is a same-page no-op, so a hostile candidate never
// reaches an attribute position.
const safeLinkFallback = "#"

// safeURL vets a candidate link target. Only targets that parse as
// absolute URLs with an http or https scheme and a host survive;
// everything else, including anything net/url rejects outright,
// collapses to safeLinkFallback. Survivors are returned in canonical
// serialized form, with the scheme lowercased and path characters
// percent-escaped as needed, so they always begin with http:// or
// https://.
func safeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return safeLinkFallback
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host != "" {
			return u.String()
		}
	}
	return safeLinkFallback
}
