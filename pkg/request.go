package pkg

import (
	"mime"
	"net/http"
)

// HasJSONBody reports whether the request declares a JSON body. Media type
// parameters such as charset are ignored.
func HasJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == ContentType.JSON
}
