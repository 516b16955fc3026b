package fingerprint

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Prefix starts every device identifier.
const Prefix = "device_"

// Components are the environment characteristics a device id is derived from.
type Components struct {
	UserAgent      string
	Language       string
	ScreenWidth    int
	ScreenHeight   int
	ColorDepth     int
	TimezoneOffset int // minutes, as reported by the browser
	LocalStorage   bool
	SessionStorage bool
	GeneratedAt    time.Time
}

// String joins the components with '|' in their fixed order.
func (c Components) String() string {
	return strings.Join([]string{
		c.UserAgent,
		c.Language,
		strconv.Itoa(c.ScreenWidth) + "x" + strconv.Itoa(c.ScreenHeight),
		strconv.Itoa(c.ColorDepth),
		strconv.Itoa(c.TimezoneOffset),
		strconv.FormatBool(c.LocalStorage),
		strconv.FormatBool(c.SessionStorage),
		strconv.FormatInt(c.GeneratedAt.UnixMilli(), 10),
	}, "|")
}

// Hash folds s into a signed 32-bit value: h = h*31 + c for every UTF-16
// code unit c, with two's-complement wrap-around.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

// Format renders a device identifier from a hash and generation time.
func Format(hash int32, generatedAt time.Time) string {
	// Widen before negating: |MinInt32| does not fit in int32.
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return Prefix + strconv.FormatInt(abs, 36) + "_" + strconv.FormatInt(generatedAt.UnixMilli(), 36)
}

// Derive computes the device identifier for c.
func Derive(c Components) string {
	return Format(Hash(c.String()), c.GeneratedAt)
}
