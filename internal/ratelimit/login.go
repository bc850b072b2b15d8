package ratelimit

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/zagros/backoffice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const keyLogin = "login:%s"

// Login attempt budget: roughly one try every six seconds with a burst of
// five, keyed per username so an attacker cannot starve other accounts.
const (
	loginRate  = 0.17
	loginBurst = 5
)

type LoginLimiter struct {
	bucket *TokenBucket
	log    *zap.Logger
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

// NewLoginLimiter builds the limiter. Without a redis address the limiter
// is disabled and every attempt is allowed.
func NewLoginLimiter(p Params) *LoginLimiter {
	addr := strings.TrimSpace(p.Config.RedisAddr)
	log := p.Log.Named("ratelimit.login")
	if addr == "" {
		log.Info("redis not configured, login rate limit disabled")
		return &LoginLimiter{log: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(p.Config.RedisPassword),
	})
	return &LoginLimiter{
		bucket: NewTokenBucket(client),
		log:    log,
	}
}

// Allow reports whether another login attempt for username may proceed.
// Redis failures fail open: losing the limiter must not lock everyone out.
func (l *LoginLimiter) Allow(ctx context.Context, username string) *Result {
	if l == nil || l.bucket == nil {
		return &Result{Allowed: true}
	}
	key := fmt.Sprintf(keyLogin, strings.ToLower(strings.TrimSpace(username)))
	result, err := l.bucket.Allow(ctx, key, loginRate, loginBurst)
	if err != nil {
		l.log.Warn("rate limiter unavailable, allowing attempt", zap.Error(err))
		return &Result{Allowed: true}
	}
	return result
}

var Module = fx.Module("rate.limit",
	fx.Provide(NewLoginLimiter),
)
