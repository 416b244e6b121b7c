package release

import "strings"

const refPrefix = "refs/tags/"

// Request is a single create-release call.
type Request struct {
	Owner      string `json:"owner"`
	Repo       string `json:"repo"`
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

// StripRef turns "refs/tags/v1.2.3" into "v1.2.3". Short names pass through.
func StripRef(name string) string {
	return strings.TrimPrefix(name, refPrefix)
}

// ParseFlag reads a boolean action input. Only the exact string "true" is true.
func ParseFlag(s string) bool {
	return s == "true"
}
