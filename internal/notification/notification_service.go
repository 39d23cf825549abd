package notification

import (
	"context"
	"time"

	notificationerrors "go-hrm/internal/notification/errors"
	"go-hrm/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]NotificationResponse, int64, error)
	UnreadCount(ctx context.Context, userID string) (UnreadCountResponse, error)
	MarkRead(ctx context.Context, userID string, req MarkReadRequest) (MarkReadResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]NotificationResponse, int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, apperror.ErrUnauthorized
	}

	items, total, err := s.repo.ListForUser(ctx, uid, unreadOnly, page, pageSize)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

func (s *service) UnreadCount(ctx context.Context, userID string) (UnreadCountResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return UnreadCountResponse{}, apperror.ErrUnauthorized
	}
	n, err := s.repo.CountUnread(ctx, uid)
	if err != nil {
		return UnreadCountResponse{}, err
	}
	return UnreadCountResponse{Unread: n}, nil
}

func (s *service) MarkRead(ctx context.Context, userID string, req MarkReadRequest) (MarkReadResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return MarkReadResponse{}, apperror.ErrUnauthorized
	}

	if req.All {
		n, err := s.repo.MarkAllRead(ctx, uid)
		if err != nil {
			s.logger.Error("mark all notifications read failed", zap.Error(err))
			return MarkReadResponse{}, err
		}
		return MarkReadResponse{Updated: n}, nil
	}

	if len(req.IDs) == 0 {
		return MarkReadResponse{}, notificationerrors.ErrNothingToMark
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return MarkReadResponse{}, notificationerrors.ErrInvalidNotificationID
		}
		ids = append(ids, id)
	}

	// hanya milik user sendiri yang ter-update
	n, err := s.repo.MarkRead(ctx, uid, ids)
	if err != nil {
		s.logger.Error("mark notifications read failed", zap.Error(err))
		return MarkReadResponse{}, err
	}
	s.logger.Debug("notifications marked read", zap.String("user_id", userID), zap.Int64("updated", n))
	return MarkReadResponse{Updated: n}, nil
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Body:      n.Body,
		Type:      n.Type,
		Extra:     n.Extra,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(items []Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, mapToResponse(n))
	}
	return out
}
