package fingerprint

import (
	"net/http"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/language"
)

// Headers a browser client uses to report its environment.
const (
	HeaderScreenWidth    = "X-Screen-Width"
	HeaderScreenHeight   = "X-Screen-Height"
	HeaderColorDepth     = "X-Color-Depth"
	HeaderTimezoneOffset = "X-Timezone-Offset"
	HeaderLocalStorage   = "X-Local-Storage"
	HeaderSessionStorage = "X-Session-Storage"

	headerViewportWidth  = "Sec-CH-Viewport-Width"
	headerViewportHeight = "Sec-CH-Viewport-Height"
)

// FromRequest collects Components from request headers. Missing or malformed
// values are left at their zero value.
func FromRequest(r *http.Request) Components {
	return Components{
		UserAgent:      r.UserAgent(),
		Language:       primaryLanguage(r.Header.Get("Accept-Language")),
		ScreenWidth:    headerInt(r, HeaderScreenWidth, headerViewportWidth),
		ScreenHeight:   headerInt(r, HeaderScreenHeight, headerViewportHeight),
		ColorDepth:     headerInt(r, HeaderColorDepth),
		TimezoneOffset: headerInt(r, HeaderTimezoneOffset),
		LocalStorage:   headerBool(r, HeaderLocalStorage),
		SessionStorage: headerBool(r, HeaderSessionStorage),
	}
}

// primaryLanguage returns the highest-weighted tag of an Accept-Language value.
func primaryLanguage(header string) string {
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

func headerInt(r *http.Request, names ...string) int {
	for _, name := range names {
		if v := strings.TrimSpace(r.Header.Get(name)); v != "" {
			n, err := cast.ToIntE(v)
			if err == nil {
				return n
			}
		}
	}
	return 0
}

func headerBool(r *http.Request, name string) bool {
	b, _ := cast.ToBoolE(strings.TrimSpace(r.Header.Get(name)))
	return b
}
