package hubspot

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const SignatureHeader = "X-HubSpot-Signature"

// Event is one entry of a webhook delivery.
type Event struct {
	EventID          int64  `json:"eventId"`
	SubscriptionID   int64  `json:"subscriptionId"`
	PortalID         int64  `json:"portalId"`
	OccurredAt       int64  `json:"occurredAt"`
	SubscriptionType string `json:"subscriptionType"`
	AttemptNumber    int    `json:"attemptNumber"`
	ObjectID         int64  `json:"objectId"`
	PropertyName     string `json:"propertyName,omitempty"`
	PropertyValue    string `json:"propertyValue,omitempty"`
	ChangeSource     string `json:"changeSource,omitempty"`
}

// ObjectKind is the part of the subscription type before the dot
// ("contact", "deal", "ticket").
func (e Event) ObjectKind() string {
	kind, _, _ := strings.Cut(e.SubscriptionType, ".")
	return kind
}

// VerifySignatureV1 checks the v1 scheme: hex(sha256(clientSecret + body)).
func VerifySignatureV1(clientSecret string, body []byte, signature string) bool {
	if clientSecret == "" || signature == "" {
		return false
	}
	sum := sha256.Sum256(append([]byte(clientSecret), body...))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) == 1
}

// SignV1 produces the v1 signature; used by tests and local tooling.
func SignV1(clientSecret string, body []byte) string {
	sum := sha256.Sum256(append([]byte(clientSecret), body...))
	return hex.EncodeToString(sum[:])
}
