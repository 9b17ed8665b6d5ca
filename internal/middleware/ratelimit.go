package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/agorahq/agora/pkg/apperror"
	"github.com/agorahq/agora/pkg/response"
)

// WriteRateLimit allows one write per window per client IP. With no redis
// client configured the limiter is a no-op.
func WriteRateLimit(rdb *redis.Client, action string, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:ip:%s:%s", c.ClientIP(), action)
		wasSet, err := rdb.SetNX(c.Request.Context(), key, "locked", window).Result()
		if err != nil {
			// fail open rather than blocking writes on a redis outage
			logrus.WithError(err).Warn("rate limit check failed")
			c.Next()
			return
		}
		if !wasSet {
			response.ResponseError(c, apperror.ErrRateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
