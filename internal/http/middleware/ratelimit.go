package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	rateLimitedCode = "too_many_requests"
	rateLimitedMsg  = "Too many requests"

	bucketIdleTTL   = 10 * time.Minute
	bucketSweepTick = time.Minute
	maxRetryAfter   = 60 // seconds
)

// keyFunc selects the identity a request is billed to.
type keyFunc func(*gin.Context) string

// KeyByIP bills requests to the client IP ("ip:203.0.113.7"). The API is
// anonymous, so the address is the only stable identity available.
func KeyByIP() keyFunc {
	return func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter is a process-local token bucket per client key. Buckets idle
// for longer than bucketIdleTTL and refilled to burst are dropped by a
// sweep that runs at most once per bucketSweepTick, piggybacking on
// request traffic.
//
// A RateLimiter is safe for concurrent use.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	key    keyFunc
	exempt map[string]struct{}
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewRateLimiter returns a limiter refilling rps tokens per second up to
// burst (coerced to at least 1). rps == 0 means a client only ever gets
// its initial burst.
func NewRateLimiter(rps float64, burst int, key keyFunc) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		key:     key,
		exempt:  map[string]struct{}{},
		now:     time.Now,
		buckets: map[string]*bucket{},
	}
}

// Except exempts route patterns (as registered, e.g. "/health"). Call it
// before the handler serves traffic.
func (rl *RateLimiter) Except(routes ...string) *RateLimiter {
	for _, r := range routes {
		rl.exempt[r] = struct{}{}
	}
	return rl
}

// take spends one token from key's bucket. When the bucket is empty it
// reports how long until a token would be available.
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= bucketSweepTick {
		for k, b := range rl.buckets {
			// Only full buckets are forgotten; dropping a drained one
			// would hand its client a fresh burst.
			if now.Sub(b.seen) >= bucketIdleTTL && b.lim.TokensAt(now) >= float64(rl.burst) {
				delete(rl.buckets, k)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.seen = now

	if b.lim.AllowN(now, 1) {
		return true, 0
	}
	res := b.lim.ReserveN(now, 1)
	wait := res.DelayFrom(now)
	res.CancelAt(now)
	return false, wait
}

// retryAfter renders a wait as whole seconds in [1, maxRetryAfter].
func retryAfter(wait time.Duration) string {
	secs := int(math.Ceil(wait.Seconds()))
	if wait == rate.InfDuration || secs > maxRetryAfter {
		secs = maxRetryAfter
	}
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// Handler enforces the limit. Rejected requests get 429 with Retry-After
// and the standard error envelope:
//
//	{"request_id": "<uuid>", "code": "too_many_requests", "msg": "Too many requests"}
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := rl.exempt[c.FullPath()]; ok {
			c.Next()
			return
		}
		ok, wait := rl.take(rl.key(c))
		if ok {
			c.Next()
			return
		}

		rateLimited.WithLabelValues(routeLabel(c)).Inc()
		CountAPIError(rateLimitedCode)
		c.Header("Retry-After", retryAfter(wait))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": RequestIDFrom(c),
			"code":       rateLimitedCode,
			"msg":        rateLimitedMsg,
		})
	}
}
