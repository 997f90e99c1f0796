package message

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/testutil"
)

type recordingPusher struct {
	mu     sync.Mutex
	events map[string][]*Event
}

func (p *recordingPusher) SendToUser(userID string, event *Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.events == nil {
		p.events = map[string][]*Event{}
	}
	p.events[userID] = append(p.events[userID], event)
	return true
}

func setupService(t *testing.T) (*Service, *recordingPusher, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	p := &recordingPusher{}
	return NewService(NewRepository(db), p), p, db
}

func TestSend_PushesToRecipient(t *testing.T) {
	svc, p, db := setupService(t)
	manager := testutil.Profile(t, db, domain.RoleManager, "ops@fleet.example")
	owner := testutil.Profile(t, db, domain.RoleOwner, "sam@sunny.example")

	m, err := svc.Send(context.Background(), manager.ID, SendRequest{ToUserID: owner.ID, Message: "Your RV is booked"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMessageType, m.MessageType)
	assert.Equal(t, manager.ID, m.FromUserID)

	require.Len(t, p.events[owner.ID], 1)
	assert.Equal(t, EventNewMessage, p.events[owner.ID][0].Type)
	assert.Equal(t, m.ID, p.events[owner.ID][0].Message.ID)

	_, err = svc.Send(context.Background(), manager.ID, SendRequest{ToUserID: "nobody", Message: "hi"})
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = svc.Send(context.Background(), manager.ID, SendRequest{ToUserID: owner.ID})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestMarkRead_OnlyRecipient(t *testing.T) {
	svc, _, db := setupService(t)
	a := testutil.Profile(t, db, domain.RoleManager, "a@example.com")
	b := testutil.Profile(t, db, domain.RoleRenter, "b@example.com")
	ctx := context.Background()

	m, err := svc.Send(ctx, a.ID, SendRequest{ToUserID: b.ID, Message: "hello"})
	require.NoError(t, err)

	_, err = svc.MarkRead(ctx, m.ID, a.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	read, err := svc.MarkRead(ctx, m.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.NotNil(t, read.ReadAt)

	_, err = svc.MarkRead(ctx, "", b.ID)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestConversations_GroupsByPartner(t *testing.T) {
	svc, _, db := setupService(t)
	me := testutil.Profile(t, db, domain.RoleManager, "me@example.com")
	alice := testutil.Profile(t, db, domain.RoleOwner, "alice@example.com")
	bob := testutil.Profile(t, db, domain.RoleRenter, "bob@example.com")
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	seed := func(from, to string, offset time.Duration, body string) {
		require.NoError(t, db.Create(&domain.Communication{
			FromUserID: from, ToUserID: to, Message: body, MessageType: "general", CreatedAt: base.Add(offset),
		}).Error)
	}
	seed(alice.ID, me.ID, 0, "a1")
	seed(alice.ID, me.ID, time.Minute, "a2")
	seed(me.ID, bob.ID, 2*time.Minute, "b1")
	seed(bob.ID, me.ID, 3*time.Minute, "b2")

	convs, err := svc.Conversations(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	assert.Equal(t, bob.ID, convs[0].PartnerID)
	assert.Equal(t, "b2", convs[0].LastMessage.Message)
	assert.Equal(t, 1, convs[0].UnreadCount)
	assert.Equal(t, domain.RoleRenter, convs[0].PartnerRole)

	assert.Equal(t, alice.ID, convs[1].PartnerID)
	assert.Equal(t, 2, convs[1].UnreadCount)
	assert.Equal(t, "Test owner", convs[1].PartnerName)

	msgs, err := svc.List(ctx, Filter{UserID: me.ID})
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, "a1", msgs[0].Message)
}
