package version

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a tag that names a semantic version.
type Version struct {
	tag   string
	canon string
}

// Original returns the tag exactly as git listed it.
func (v *Version) Original() string { return v.tag }

// Compare orders v against o by semver precedence: -1, 0 or +1.
func (v *Version) Compare(o *Version) int {
	return semver.Compare(v.canon, o.canon)
}

// Parse returns every line of a tag listing that is a valid semantic version,
// newest first. Lines that do not parse are dropped.
func Parse(tags string) []*Version {
	var vers []*Version
	for _, line := range strings.Split(tags, "\n") {
		v, ok := valid(line)
		if !ok {
			continue
		}
		vers = append(vers, v)
	}

	sort.SliceStable(vers, func(i, j int) bool {
		return vers[i].Compare(vers[j]) > 0
	})
	return vers
}

func valid(line string) (*Version, bool) {
	tag := strings.TrimSpace(line)
	if tag == "" {
		return nil, false
	}

	canon := tag
	if !strings.HasPrefix(canon, "v") {
		canon = "v" + canon
	}
	if !semver.IsValid(canon) || !hasFullCore(canon) {
		return nil, false
	}
	return &Version{tag: tag, canon: canon}, true
}

// hasFullCore reports whether s carries all three of MAJOR.MINOR.PATCH.
// semver.IsValid also accepts the "v1" and "v1.2" shorthands.
func hasFullCore(s string) bool {
	core := s
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	return strings.Count(core, ".") == 2
}
