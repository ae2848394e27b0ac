package storage

import (
	"net/http"
	"net/url"
)

const metaQueryPrefix = "x-amz-meta-"

// uploadHeaders are the headers bound into the signature. Content-Type is the
// only one; the client sends it with its PUT.
func uploadHeaders(contentType string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", contentType)
	return h
}

// metadataQuery carries the object metadata as signed query parameters so the
// URL alone is enough to store it.
func metadataQuery(metadata map[string]string) url.Values {
	q := url.Values{}
	for k, v := range metadata {
		q.Set(metaQueryPrefix+k, v)
	}
	return q
}

func flatten(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
