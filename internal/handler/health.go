package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the station API can reach its backing services.
// Degraded dependencies flip the overall status and the HTTP code, nothing
// about connection strings or failure causes leaks to the caller.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		deps := gin.H{
			"database": upOrDown(pingDatabase(ctx, db)),
			"redis":    upOrDown(pingRedis(ctx, rdb)),
		}

		status, code := "ok", http.StatusOK
		for _, v := range deps {
			if v != "up" {
				status, code = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

func pingDatabase(ctx context.Context, db *gorm.DB) bool {
	if db == nil {
		return false
	}
	sqlDB, err := db.DB()
	return err == nil && sqlDB.PingContext(ctx) == nil
}

func pingRedis(ctx context.Context, rdb *redis.Client) bool {
	return rdb != nil && rdb.Ping(ctx).Err() == nil
}

func upOrDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
