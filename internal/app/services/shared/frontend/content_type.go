package frontend

import (
	"mime"
	"net/http"
	"path"
)

func contentTypeFor(name string, body []byte) string {
	if contentType := mime.TypeByExtension(path.Ext(name)); contentType != "" {
		return contentType
	}
	return http.DetectContentType(body)
}
