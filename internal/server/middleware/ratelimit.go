package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/qrfeedback/pkg/api"
)

// RateLimiter ограничивает частоту запросов по ключу (обычно IP адрес).
// Для каждого ключа создается свой token bucket из x/time/rate.
type RateLimiter struct {
	visitors map[string]*visitor
	stopC    chan struct{}
	stopOnce sync.Once
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	mu       sync.Mutex

	trustProxy bool
}

// visitor хранит limiter и время последнего обращения
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает новый rate limiter
// requests - сколько запросов разрешено за window, также размер burst.
// trustProxy включает чтение X-Forwarded-For / X-Real-IP; без прокси
// эти заголовки задает сам клиент, поэтому ключом служит RemoteAddr.
func NewRateLimiter(requests int, window time.Duration, trustProxy bool) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		stopC:    make(chan struct{}),
		limit:    rate.Every(window / time.Duration(max(requests, 1))),
		burst:    max(requests, 1),
		idleTTL:  window * 2,

		trustProxy: trustProxy,
	}

	// Периодически удаляем неактивных посетителей
	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupIdle(time.Now())
		case <-rl.stopC:
			return
		}
	}
}

// cleanupIdle удаляет посетителей, не обращавшихся дольше idleTTL
func (rl *RateLimiter) cleanupIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
}

// Stop останавливает cleanup goroutine, повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// Middleware возвращает middleware, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r, rl.trustProxy)

			if !rl.Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", redactPhones(r.URL.Path),
				)

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{
					Error:   http.StatusText(http.StatusTooManyRequests),
					Message: "rate limit exceeded, please try again later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса.
// Заголовки X-Forwarded-For и X-Real-IP учитываются только при trustProxy.
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Берем первый IP из списка (реальный клиент)
			first, _, _ := strings.Cut(xff, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	// RemoteAddr без порта, чтобы все соединения клиента попадали в один bucket
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
