package hubspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignatureV1(t *testing.T) {
	body := []byte(`[{"objectId":1,"subscriptionType":"deal.propertyChange"}]`)
	sig := SignV1("secret", body)

	assert.True(t, VerifySignatureV1("secret", body, sig))
	assert.False(t, VerifySignatureV1("other", body, sig))
	assert.False(t, VerifySignatureV1("secret", []byte("tampered"), sig))
	assert.False(t, VerifySignatureV1("secret", body, ""))
}

func TestEventObjectKind(t *testing.T) {
	assert.Equal(t, "contact", Event{SubscriptionType: "contact.propertyChange"}.ObjectKind())
	assert.Equal(t, "deal", Event{SubscriptionType: "deal.creation"}.ObjectKind())
	assert.Equal(t, "ticket", Event{SubscriptionType: "ticket"}.ObjectKind())
}
