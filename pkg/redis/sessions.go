package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 24 * time.Hour

// Session binds a logged-in user to a cookie token. The CSRF token travels
// with the session so unsafe requests can be checked against it.
type Session struct {
	Token     string
	UserID    string
	CSRFToken string
}

func CreateSession(ctx context.Context, userID string) (*Session, error) {
	client := RedisClient()
	defer client.Close()

	session := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CSRFToken: uuid.NewString(),
	}

	sessionKey := fmt.Sprintf("session:%s", session.Token)
	pipe := client.TxPipeline()
	pipe.HSet(ctx, sessionKey, "user_id", session.UserID, "csrf_token", session.CSRFToken)
	pipe.Expire(ctx, sessionKey, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return session, nil
}

func GetSession(ctx context.Context, token string) (*Session, error) {
	client := RedisClient()
	defer client.Close()

	sessionKey := fmt.Sprintf("session:%s", token)
	fields, err := client.HGetAll(ctx, sessionKey).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("session not found")
	}

	return &Session{
		Token:     token,
		UserID:    fields["user_id"],
		CSRFToken: fields["csrf_token"],
	}, nil
}

func DeleteSession(ctx context.Context, token string) error {
	client := RedisClient()
	defer client.Close()

	sessionKey := fmt.Sprintf("session:%s", token)
	return client.Del(ctx, sessionKey).Err()
}
