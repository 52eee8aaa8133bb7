package build

import "fmt"

// Overridden at link time, e.g.
// -ldflags "-X github.com/bornholm/rfc-lookup/internal/build.ShortVersion=1.2.0"
var (
	ShortVersion = "0.1.0"
	ProjectURL   = "https://github.com/bornholm/rfc-lookup"
	GitRef       = "unknown"
	BuildDate    = "unknown"
	LongVersion  = fmt.Sprintf("%s (%s, %s)", ShortVersion, GitRef, BuildDate)
)
