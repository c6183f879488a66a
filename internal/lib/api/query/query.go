package query

import (
	"net/http"
	"strconv"
)

// Limit reads the optional ?limit= parameter, falling back to def.
func Limit(r *http.Request, def int64) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
