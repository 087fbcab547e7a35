package suggest

import "regexp"

// UnknownSymbol is returned when a diagnostic message matches none of the
// known phrasings. The run keeps going; the record just never gets a match
// from the completion filter.
const UnknownSymbol = "Unknown"

var (
	cannotFindNameRe = regexp.MustCompile(`Cannot find name '([^']+)'`)
	umdGlobalRe      = regexp.MustCompile(`'([^']+)' refers to a UMD global`)
)

// ExtractSymbol pulls the offending identifier out of a diagnostic message.
// The phrasings matched here are the documented contract of the engine
// package; any other wording degrades to UnknownSymbol rather than failing.
func ExtractSymbol(message string) string {
	if m := cannotFindNameRe.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	if m := umdGlobalRe.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return UnknownSymbol
}
