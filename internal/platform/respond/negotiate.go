package respond

import (
	"strings"

	"github.com/danielgtaylor/huma/v2/negotiation"
)

// problemFormats lists the media types a problem body can be written in. JSON
// comes first so it wins ties and is used when nothing matches, the same way
// huma picks its default format.
var problemFormats = []string{
	"application/json",
	"application/problem+json",
	"application/cbor",
	"application/problem+cbor",
}

// selectFormat reports whether CBOR should be used for the given Accept header.
func selectFormat(accept string) bool {
	return strings.HasSuffix(negotiation.SelectQValueFast(accept, problemFormats), "cbor")
}
