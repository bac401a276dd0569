package marshal

import (
	"bytes"
	"io"
	"strings"
)

func (r *Result) body() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(r.Body)), nil
}

func joinPath(base, path string) string {
	if len(base) == 0 {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// splitRequestURI splits a modeled request URI such as "/{Bucket}?tagging"
// into its path and query.
func splitRequestURI(uri string) (path, rawQuery string) {
	path, rawQuery, _ = strings.Cut(uri, "?")
	if len(path) == 0 {
		path = "/"
	}
	return path, rawQuery
}
