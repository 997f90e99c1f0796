package message

import (
	"context"
	"fmt"
	"strings"

	"rvconsign/internal/domain"
)

// Pusher delivers an event to a connected user and reports whether it was delivered.
type Pusher interface {
	SendToUser(userID string, event *Event) bool
}

type Service struct {
	repo   Repository
	pusher Pusher
}

func NewService(repo Repository, pusher Pusher) *Service {
	return &Service{repo: repo, pusher: pusher}
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Communication, error) {
	return s.repo.List(ctx, f)
}

// Send stores the message and pushes new_message to the recipient if online.
func (s *Service) Send(ctx context.Context, fromUserID string, req SendRequest) (*domain.Communication, error) {
	if strings.TrimSpace(req.ToUserID) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, ErrMissingFields
	}
	profiles, err := s.repo.ProfilesByID(ctx, []string{req.ToUserID})
	if err != nil {
		return nil, err
	}
	if _, ok := profiles[req.ToUserID]; !ok {
		return nil, ErrRecipientNotFound
	}

	msgType := req.MessageType
	if msgType == "" {
		msgType = domain.DefaultMessageType
	}
	m := &domain.Communication{
		FromUserID:     fromUserID,
		ToUserID:       req.ToUserID,
		BookingID:      req.BookingID,
		AssetID:        req.AssetID,
		Subject:        req.Subject,
		Message:        req.Message,
		MessageType:    msgType,
		AttachmentURLs: req.AttachmentURLs,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	s.pusher.SendToUser(m.ToUserID, NewMessageEvent(m))
	return m, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) (*domain.Communication, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	m, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	s.pusher.SendToUser(m.FromUserID, NewReadEvent(m))
	return m, nil
}

// Conversations groups the user's messages by partner, newest thread first.
func (s *Service) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	msgs, err := s.repo.ListForUserNewestFirst(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	convs := []Conversation{}
	for i := range msgs {
		m := &msgs[i]
		partner := m.ToUserID
		if partner == userID {
			partner = m.FromUserID
		}
		pos, ok := index[partner]
		if !ok {
			pos = len(convs)
			index[partner] = pos
			convs = append(convs, Conversation{PartnerID: partner, LastMessage: m})
		}
		if m.ToUserID == userID && !m.IsRead {
			convs[pos].UnreadCount++
		}
	}

	ids := make([]string, 0, len(convs))
	for _, c := range convs {
		ids = append(ids, c.PartnerID)
	}
	profiles, err := s.repo.ProfilesByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range convs {
		if p, ok := profiles[convs[i].PartnerID]; ok {
			convs[i].PartnerName = p.FullName
			if convs[i].PartnerName == "" {
				convs[i].PartnerName = p.Email
			}
			convs[i].PartnerRole = p.Role
		}
	}
	return convs, nil
}
