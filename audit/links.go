package audit

import (
	"net/url"
	"strings"

	"github.com/fwojciec/seoaudit"
)

// AnalyzeLinks classifies each link as internal or external against the
// base domain and returns aggregate link stats alongside the classified
// links. The function is total: malformed hrefs are classified external
// and flagged rather than raising an error.
func AnalyzeLinks(links []seoaudit.Link, baseDomain string) (*seoaudit.LinkStats, []seoaudit.Link) {
	stats := &seoaudit.LinkStats{}
	classified := make([]seoaudit.Link, len(links))

	for i, link := range links {
		kind, malformed := ClassifyLink(link.Href, baseDomain)

		link.Kind = kind
		classified[i] = link

		if malformed {
			stats.Malformed = append(stats.Malformed, link.Href)
		}

		switch kind {
		case seoaudit.LinkInternal:
			stats.InternalCount++
		case seoaudit.LinkExternal:
			stats.ExternalCount++
			if !link.NoFollow && !malformed {
				stats.MissingNoFollow = append(stats.MissingNoFollow, link)
			}
		}
	}

	return stats, classified
}

// ClassifyLink classifies a single href against the base domain. A link is
// internal iff its host equals the base domain (www-insensitive) or is
// empty (protocol-relative or path-relative hrefs). Unparseable hrefs are
// external and reported malformed.
func ClassifyLink(href, baseDomain string) (kind seoaudit.LinkKind, malformed bool) {
	u, err := url.Parse(href)
	if err != nil || strings.ContainsAny(strings.TrimSpace(href), " \t") {
		return seoaudit.LinkExternal, true
	}

	host := normalizeHost(u.Hostname())
	if host == "" || host == normalizeHost(baseDomain) {
		return seoaudit.LinkInternal, false
	}
	return seoaudit.LinkExternal, false
}

// normalizeHost lowercases a host and strips a leading www label so
// www.example.com and example.com classify as the same site.
func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
