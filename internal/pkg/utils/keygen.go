package utils

import (
	"strings"
	"time"
)

// KeyTimeLayout is the timestamp suffix of a project key.
const KeyTimeLayout = "20060102150405"

// ProjectKey identifies a stored project snapshot: the project code plus the
// second it was created. Rendered as "{Code}_{YYYYMMDDHHMMSS}".
type ProjectKey struct {
	Code      string
	CreatedAt time.Time
}

// NewProjectKey truncates t to whole seconds, matching the rendered form.
func NewProjectKey(code string, t time.Time) ProjectKey {
	return ProjectKey{Code: code, CreatedAt: t.Truncate(time.Second)}
}

func (k ProjectKey) String() string {
	return k.Code + "_" + k.CreatedAt.Format(KeyTimeLayout)
}

// FileName is the document name for the key.
func (k ProjectKey) FileName() string {
	return k.String() + ".json"
}

// ParseProjectKey splits a file stem on its last underscore. Codes may
// themselves contain underscores.
func ParseProjectKey(stem string) (ProjectKey, bool) {
	i := strings.LastIndex(stem, "_")
	if i <= 0 || i == len(stem)-1 {
		return ProjectKey{}, false
	}
	ts, err := time.ParseInLocation(KeyTimeLayout, stem[i+1:], time.Local)
	if err != nil {
		return ProjectKey{}, false
	}
	return ProjectKey{Code: stem[:i], CreatedAt: ts}, true
}

// MatchesPrefix reports whether id is a leading substring of stem. This is
// the whole lookup contract for project identifiers.
func MatchesPrefix(stem, id string) bool {
	return strings.HasPrefix(stem, id)
}
