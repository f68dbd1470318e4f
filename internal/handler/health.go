package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings postgres and redis and reports per-dependency status.
// Returns 503 when either dependency is down so orchestrators can act on it.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]string{"db": "connected", "redis": "connected"}

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["db"] = "error"
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "error"
		}

		healthy := checks["db"] == "connected" && checks["redis"] == "connected"
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    healthy,
			"db":    checks["db"],
			"redis": checks["redis"],
		})
	}
}
