package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// MaxTimestampSkew is how far a request timestamp may drift from the
// current time before the request is rejected outright.
const MaxTimestampSkew = 300 * time.Second

// VerifySignature checks the v0 Slack request signature: HMAC-SHA256 over
// "v0:{timestamp}:{body}" with the signing secret, compared in constant
// time against the header value "v0={hex digest}". A timestamp outside the
// allowed skew fails regardless of the signature.
func VerifySignature(signingSecret, timestampHeader, signatureHeader string, body []byte, now time.Time) bool {
	ts, err := strconv.ParseInt(timestampHeader, 10, 64)
	if err != nil {
		return false
	}
	drift := now.Sub(time.Unix(ts, 0))
	if drift < 0 {
		drift = -drift
	}
	if drift > MaxTimestampSkew {
		return false
	}

	expected := ComputeSignature(signingSecret, timestampHeader, body)
	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}

// ComputeSignature produces the "v0={hex}" signature for a request body.
func ComputeSignature(signingSecret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(signingSecret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}
