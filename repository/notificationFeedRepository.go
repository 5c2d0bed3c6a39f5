package repository

import (
	"context"
	"encoding/json"

	"github.com/evently-app/evently/entity"

	"github.com/redis/go-redis/v9"
)

// NotificationFeedRepository appends notification documents to per-user feeds
// in the external push store. Feeds are append-only; nothing here mutates a
// written document.
type NotificationFeedRepository struct {
	redisClient *redis.Client
}

func NewNotificationFeedRepository(redisClient *redis.Client) *NotificationFeedRepository {
	return &NotificationFeedRepository{
		redisClient: redisClient,
	}
}

func (r *NotificationFeedRepository) Append(ctx context.Context, userID string, notification entity.Notification) error {
	b, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	return r.redisClient.LPush(ctx, "notifications:"+userID, b).Err()
}
