package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultWriteRate = "30-M"

// WriteRateLimitMiddleware ограничивает частоту запросов записи.
// Ключ - API-ключ клиента, без него - IP.
func WriteRateLimitMiddleware(formatted string, logger *logrus.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logger.WithError(err).WithField("rate", formatted).Warnf("Invalid write rate limit, using %s", defaultWriteRate)
		rate, _ = limiter.NewRateFromFormatted(defaultWriteRate)
	}

	return mgin.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		mgin.WithKeyGetter(func(c *gin.Context) string {
			if key := extractAPIKey(c); key != "" {
				return "key:" + key
			}
			return "ip:" + c.ClientIP()
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.WithFields(logrus.Fields{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			}).Warn("Write rate limit reached")
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		}),
	)
}
