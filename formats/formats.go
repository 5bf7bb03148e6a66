// Package formats provides decoders for common string and number formats,
// each built by refining a primitive decoder with decoders.Then.
package formats

import (
	"encoding/base64"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/i18n"
)

// RFC3339 decodes an RFC3339 (optionally fractional) timestamp string.
var RFC3339 decoders.Decoder[time.Time] = decoders.Then(decoders.String, parseRFC3339)

// UUID decodes a UUID string in any form accepted by uuid.Parse.
var UUID decoders.Decoder[uuid.UUID] = decoders.Then(decoders.String, func(s string) decoders.Result[uuid.UUID] {
	id, err := uuid.Parse(s)
	if err != nil {
		return decoders.Error[uuid.UUID](i18n.T("not_uuid", nil))
	}
	return decoders.Ok(id)
})

// Base64 decodes standard base64 text. Line breaks are ignored, as in the
// content field of the GitHub contents API.
var Base64 decoders.Decoder[[]byte] = decoders.Then(decoders.String, func(s string) decoders.Result[[]byte] {
	b, err := base64.StdEncoding.DecodeString(stripNewlines(s))
	if err != nil {
		return decoders.Error[[]byte](i18n.T("not_base64", nil))
	}
	return decoders.Ok(b)
})

// Integer decodes a number with no fractional part that fits in an int64.
var Integer decoders.Decoder[int64] = decoders.Then(decoders.Number, func(f float64) decoders.Result[int64] {
	if math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return decoders.Error[int64](i18n.T("not_integer", nil))
	}
	return decoders.Ok(int64(f))
})

func parseRFC3339(s string) decoders.Result[time.Time] {
	// RFC3339Nano accepts fractional seconds of any precision, and none.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return decoders.Error[time.Time](i18n.T("not_rfc3339", nil))
	}
	return decoders.Ok(t)
}

func stripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
