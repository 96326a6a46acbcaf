package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Lock pendek: kalau server crash di tengah request, lock hilang sendiri.
	idempotencyLockTTL = 30 * time.Second
	// Cache sepanjang hari kerja; replay setelah itu dianggap request baru.
	idempotencyCacheTTL = 24 * time.Hour
)

// cachedResponse menyimpan status + body mentah supaya replay
// mengembalikan persis response pertama.
type cachedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type responseRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency melindungi endpoint POST yang mengubah state (clock-in,
// clock-out, submit cuti) dari double-submit. Client kirim header
// Idempotency-Key; response sukses pertama di-cache, request berikutnya
// dengan key sama dapat replay response yang sama persis.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		employeeID := c.GetString("employee_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), employeeID, idempKey)
		lockKey := cacheKey + ":lock" // Key khusus untuk locking

		// 1. CEK CACHE: replay response pertama apa adanya
		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil && cached.Status != 0 {
				c.Data(cached.Status, "application/json; charset=utf-8", []byte(cached.Body))
				c.Abort()
				return
			}
		}

		// 2. ATOMIC LOCK (SetNX)
		// Jika lock sudah ada, berarti request dengan key sama sedang jalan.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Permintaan Anda sedang diproses, mohon tunggu sebentar.",
			})
			return
		}

		// 3. Jalankan handler sambil merekam response-nya
		rec := &responseRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// 4. Hanya response sukses yang di-cache; error boleh dicoba ulang.
		status := rec.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			if payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.body.String()}); err == nil {
				rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL)
			}
		}
		// Lock selalu dilepas supaya retry setelah error tidak kena 409.
		rdb.Del(c.Request.Context(), lockKey)
	}
}
