package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/royalhouse/fellowship-backend/internal/auth"
	"github.com/royalhouse/fellowship-backend/internal/member"
	"github.com/royalhouse/fellowship-backend/utils"
)

type Service interface {
	List(ctx context.Context, unreadOnly bool, limit int) ([]InAppNotification, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) error
	RegisterToken(ctx context.Context, userID uint, token string) error

	// StartMemberJoinedConsumer wires the signup broadcast into the three
	// admin channels: dashboard feed, email alert, FCM push.
	StartMemberJoinedConsumer(ctx context.Context)
}

type service struct {
	repo     Repository
	authRepo auth.Repository
}

func NewService(repo Repository, authRepo auth.Repository) Service {
	return &service{repo: repo, authRepo: authRepo}
}

func (s *service) List(ctx context.Context, unreadOnly bool, limit int) ([]InAppNotification, error) {
	return s.repo.List(ctx, unreadOnly, limit)
}

func (s *service) MarkRead(ctx context.Context, id uint) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

func (s *service) RegisterToken(ctx context.Context, userID uint, token string) error {
	return s.repo.SaveToken(ctx, &FCMDeviceToken{UserID: userID, Token: token})
}

func (s *service) StartMemberJoinedConsumer(ctx context.Context) {
	utils.StartConsumer(ctx, utils.TopicMemberJoined, "notification-service", func(raw []byte) {
		var ev member.MemberJoinedEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Printf("⚠️ notification: bad member-joined payload: %v", err)
			return
		}
		s.handleMemberJoined(ctx, ev)
	})
}

func (s *service) handleMemberJoined(ctx context.Context, ev member.MemberJoinedEvent) {
	title := "New member joined"
	body := fmt.Sprintf("%s (%s) just signed up", ev.Name, ev.Email)
	if ev.Course != "" {
		body = fmt.Sprintf("%s (%s) just signed up — %s", ev.Name, ev.Email, ev.Course)
	}

	if err := s.repo.Create(ctx, &InAppNotification{
		Title: title,
		Body:  body,
		Kind:  "member_joined",
	}); err != nil {
		log.Printf("⚠️ notification: feed insert failed: %v", err)
	}

	// Welcome the member, alert the admins
	go func() {
		if err := utils.SendWelcomeEmail(ev.Email, ev.Name); err != nil {
			log.Printf("⚠️ notification: welcome email failed: %v", err)
		}
	}()
	if admins, err := s.authRepo.GetAdminEmails(); err == nil && len(admins) > 0 {
		utils.SendNewMemberAlert(admins, ev.Name, ev.Email, ev.Course)
	}

	if utils.IsFCMEnabled() {
		if tokens, err := s.repo.AllTokens(ctx); err == nil && len(tokens) > 0 {
			sent := utils.SendPushToTokens(ctx, tokens, title, body)
			log.Printf("📲 notification: push sent to %d/%d devices", sent, len(tokens))
		}
	}
}
