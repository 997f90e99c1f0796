package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/domain"
)

func TestSendGrid_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sg := NewSendGridWithHost("SG.test", "ops@fleet.example", "Fleet", srv.URL)
	err := sg.Send(context.Background(), Message{To: "owner@example.com", Subject: "Hi", PlainText: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", got["subject"])
}

func TestSendGrid_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	sg := NewSendGridWithHost("SG.bad", "ops@fleet.example", "Fleet", srv.URL)
	err := sg.Send(context.Background(), Message{To: "owner@example.com", Subject: "Hi", PlainText: "x"})
	assert.ErrorContains(t, err, "status 401")
}

func TestLogNotifier_RequiresRecipient(t *testing.T) {
	assert.ErrorIs(t, LogNotifier{}.Send(context.Background(), Message{}), ErrNoRecipient)
	assert.NoError(t, LogNotifier{}.Send(context.Background(), Message{To: "a@b.c"}))
}

func TestRemittanceStatement(t *testing.T) {
	r := &domain.Remittance{
		RemittanceNumber:     "REM-1-abc",
		PeriodStart:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:            time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		GrossRentalIncome:    1615,
		OwnerSplitPercentage: 70,
		OwnerPayoutAmount:    964.95,
	}

	msg := RemittanceStatement("owner@example.com", "Sunny RV LLC", r)

	assert.Contains(t, msg.Subject, "REM-1-abc")
	assert.Contains(t, msg.PlainText, "Your share (70%): $964.95")
	assert.Contains(t, msg.HTML, "<p>Period: 2025-01-01 to 2025-01-31</p>")
}
