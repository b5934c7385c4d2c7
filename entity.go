package recurly

import "strings"

// notFoundPath is reserved for entities that stand for "no such resource".
// Real paths are relative and never carry a scheme, so it cannot collide.
const notFoundPath = "recurly://entity-not-found"

// ResourcePath locates an entity relative to the API root. It is a
// comparable value: two entities are the same resource exactly when their
// paths are equal, and a ResourcePath can be used as a map key.
type ResourcePath struct {
	path string
}

func newResourcePath(segments ...string) ResourcePath {
	return ResourcePath{path: strings.Join(segments, "")}
}

func (p ResourcePath) String() string {
	return p.path
}

// IsNotFound reports whether p is the reserved not-found path.
func (p ResourcePath) IsNotFound() bool {
	return p.path == notFoundPath
}
