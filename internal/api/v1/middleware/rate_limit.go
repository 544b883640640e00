package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"seoaudit/internal/util"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	mu      sync.Mutex
	clients = make(map[string]*client)
)

func init() {
	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > 5*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()
}

// RateLimit throttles per client IP. Audits are expensive, so the limits are
// deliberately low.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := util.GetClientIPAddress(r)

		mu.Lock()
		c, ok := clients[ip]
		if !ok {
			// allow 1 req/sec with burst up to 3
			c = &client{limiter: rate.NewLimiter(1, 3)}
			clients[ip] = c
		}
		c.lastSeen = time.Now()
		allowed := c.limiter.Allow()
		mu.Unlock()

		if !allowed {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
