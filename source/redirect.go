package source

import (
	"bytes"
	"fmt"
	"html"
)

// RedirectContentType is the content type of redirect pages.
const RedirectContentType = "text/html"

// Redirect builds an HTML page that immediately refreshes to target.
// The target is escaped for use inside an attribute value.
func Redirect(target string) *Resolved {
	page := []byte(fmt.Sprintf(`<meta http-equiv="refresh" content="0; URL=%s" />`, html.EscapeString(target)))

	return &Resolved{
		Source:      RedirectSource{Target: target},
		Body:        bytes.NewReader(page),
		ContentType: RedirectContentType,
		Length:      int64(len(page)),
	}
}
