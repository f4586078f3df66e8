// Package fetcher provides HTTP fetching and HTML parsing of championat.com pages.
//
// The fetcher downloads one page per call, decodes it to UTF-8 according to its
// Content-Type and meta tags, and returns a goquery document. Requests carry a
// fixed User-Agent and are paced by a token bucket so a multi-team extraction
// stays polite towards the site.
package fetcher
