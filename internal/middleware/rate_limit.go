package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var otpLimiters = &limiterStore{
	limiters: make(map[string]*rate.Limiter),
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		// 5 pedidos de OTP por minuto por IP, burst 3.
		limiter = rate.NewLimiter(rate.Every(time.Minute/5), 3)
		s.limiters[ip] = limiter
	}
	return limiter
}

// OTPRateLimit protege o reenvio de OTP contra abuso por IP.
func OTPRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !otpLimiters.get(ip).Allow() {
			zap.L().Warn("otp rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too_many_requests",
			})
			return
		}
		c.Next()
	}
}
