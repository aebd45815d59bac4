package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnexpectedResult redis вернул результат неожиданного типа
var ErrUnexpectedResult = errors.New("ratelimit: unexpected redis script result")

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Limiter ограничитель запросов с фиксированным окном, состояние хранится в Redis
// (общий счётчик для всех инстансов сервиса)
type Limiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

// New создает ограничитель: не больше limit запросов за window на один ключ
func New(rdb redis.Scripter, limit int, window time.Duration, prefix string) *Limiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Allow увеличивает счётчик ключа и сообщает, укладывается ли запрос в лимит
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.incr(ctx, l.prefix+":"+key)
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

// Limit максимальное число запросов в окне
func (l *Limiter) Limit() int {
	return l.limit
}

// Window длительность окна
func (l *Limiter) Window() time.Duration {
	return l.window
}

func (l *Limiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit: run script: %w", err)
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUnexpectedResult, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnexpectedResult, res)
	}
}
