package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// Limiter счётчик запросов по ключу
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Limit() int
	Window() time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RateLimit ограничивает число запросов с одного IP.
// При недоступности хранилища счётчиков failOpen=true пропускает запрос, иначе отвечает 503
func RateLimit(limiter Limiter, failOpen bool, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				log.Error("RateLimit: limiter unavailable for ip=%s: %v", ip, err)
				if !failOpen {
					handlers.RespondError(w, http.StatusServiceUnavailable, msgTooManyRequests)
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				log.Warn("RateLimit: ip=%s exceeded %d requests", ip, limiter.Limit())
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
