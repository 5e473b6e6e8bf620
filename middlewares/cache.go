package middlewares

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const cacheGenKey = "floor:cache:gen"

// cacheWriter tees the response body while forwarding it to the client.
type cacheWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// CacheResponse serves GET responses from Redis. Every key carries a
// generation counter that mutating routes bump (see InvalidateCache), so a
// hit is never older than the last completed write. With a nil client the
// middleware is a pass-through.
func CacheResponse(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		gen, _ := rdb.Get(ctx, cacheGenKey).Int64()
		key := fmt.Sprintf("floor:cache:%d:%s?%s", gen, c.Request.URL.Path, c.Request.URL.RawQuery)

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		if cw.Status() == http.StatusOK {
			_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
		}
	}
}

// InvalidateCache bumps the cache generation after any successful mutation
// so cached floor views from before the write can no longer be served.
func InvalidateCache(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if rdb == nil || c.Request.Method == http.MethodGet {
			return
		}
		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			_ = rdb.Incr(context.Background(), cacheGenKey).Err()
		}
	}
}
