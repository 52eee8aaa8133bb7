package client

import (
	"fmt"
	"net/http"

	"github.com/bornholm/rfc-lookup/internal/build"
)

const (
	ReportURLPattern     = "https://www.rfc-editor.org/rfc/rfc%d.txt"
	ReportHTMLURLPattern = "https://www.rfc-editor.org/rfc/rfc%d.html"
	SearchURL            = "https://www.rfc-editor.org/search/rfc_search_detail.php"
	LatestIndexURL       = "https://www.ietf.org/rfc/rfc-index-latest.txt"
)

const AppName = "rfc-lookup"

var UserAgent = fmt.Sprintf("%s/%s (+%s)", AppName, build.ShortVersion, build.ProjectURL)

// AllowedSchemes lists the only URL schemes the client will ever request.
var AllowedSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
}

func DefaultHeaders() http.Header {
	header := http.Header{}
	header.Set("User-Agent", UserAgent)
	header.Set("Accept", "*/*")
	return header
}

// ReportURL returns the address of the plain text version of an RFC.
func ReportURL(id int) string {
	return fmt.Sprintf(ReportURLPattern, id)
}

// ReportHTMLURL returns the address of the HTML version of an RFC,
// suitable for display.
func ReportHTMLURL(id int) string {
	return fmt.Sprintf(ReportHTMLURLPattern, id)
}
