package optext

import (
	"strings"
)

// parseTagKeys splits the inner text of an `opt:"..."` struct tag into a
// key/value map. Keys are comma separated; values follow "=" and may be
// single-quoted to contain commas, e.g. `opt:"short=o,help='a, b and c'"`.
func parseTagKeys(inner string) map[string]string {
	out := map[string]string{}
	for len(inner) > 0 {
		var key string
		if i := strings.IndexAny(inner, "=,"); i < 0 {
			out[strings.TrimSpace(inner)] = ""
			break
		} else if inner[i] == ',' {
			out[strings.TrimSpace(inner[:i])] = ""
			inner = inner[i+1:]
			continue
		} else {
			key = strings.TrimSpace(inner[:i])
			inner = inner[i+1:]
		}

		var val string
		if strings.HasPrefix(inner, "'") {
			end := strings.Index(inner[1:], "'")
			if end < 0 {
				val = inner[1:]
				inner = ""
			} else {
				val = inner[1 : 1+end]
				inner = inner[2+end:]
				inner = strings.TrimPrefix(inner, ",")
			}
		} else if i := strings.Index(inner, ","); i < 0 {
			val = inner
			inner = ""
		} else {
			val = inner[:i]
			inner = inner[i+1:]
		}
		out[key] = val
	}
	delete(out, "")
	return out
}
