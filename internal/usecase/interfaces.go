package usecase

import (
	"context"
	"time"
)

// IdentityProvider is the slice of the auth provider the usecases need.
// Sign-in happens on the client; the server looks up and removes accounts.
type IdentityProvider interface {
	LookupEmail(ctx context.Context, email string) (uid string, err error)
	DeleteUser(ctx context.Context, uid string) error
}

// ChatBroadcaster pushes a chat payload to every connected listener.
type ChatBroadcaster interface {
	Broadcast(message []byte)
}

// RateLimiter gates repeated actions per key.
type RateLimiter interface {
	Allow(key string, maxTokens, refillRate int, refillTime time.Duration) (bool, time.Duration)
}
