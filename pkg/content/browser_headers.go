package content

import (
	"net/http"
	"strings"
)

const (
	acceptDocument = "text/html,application/xhtml+xml,application/xml;q=0.9,application/pdf;q=0.8,*/*;q=0.7"
	acceptPDF      = "application/pdf,*/*;q=0.8"
)

// addBrowserHeaders sets the headers of a top-level browser navigation, publisher sites
// such as PMC answer bare clients with 403. Accept-Encoding is left to the transport.
func addBrowserHeaders(req *http.Request, userAgent string) {
	accept := acceptDocument
	if strings.HasSuffix(strings.ToLower(req.URL.Path), ".pdf") {
		accept = acceptPDF
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
}
