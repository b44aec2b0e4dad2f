package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func findAccessLog(t *testing.T, recorded *observer.ObservedLogs) *observer.LoggedEntry {
	t.Helper()
	for _, entry := range recorded.All() {
		if entry.Message == "HTTP request" {
			e := entry
			return &e
		}
	}
	return nil
}

func serveWithAccessLog(level zapcore.Level, register func(*gin.Engine), method, target string) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	register(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	engine.ServeHTTP(w, req)
	return w, recorded
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs successful requests at info", func(t *testing.T) {
		w, recorded := serveWithAccessLog(zapcore.InfoLevel, func(e *gin.Engine) {
			e.GET("/suppliers", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "ok"})
			})
		}, http.MethodGet, "/suppliers")

		assert.Equal(t, http.StatusOK, w.Code)
		entry := findAccessLog(t, recorded)
		require.NotNil(t, entry)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
	})

	t.Run("logs 4xx at warn", func(t *testing.T) {
		_, recorded := serveWithAccessLog(zapcore.WarnLevel, func(e *gin.Engine) {
			e.GET("/bad", func(c *gin.Context) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			})
		}, http.MethodGet, "/bad")

		entry := findAccessLog(t, recorded)
		require.NotNil(t, entry)
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
	})

	t.Run("logs 5xx at error", func(t *testing.T) {
		_, recorded := serveWithAccessLog(zapcore.ErrorLevel, func(e *gin.Engine) {
			e.GET("/boom", func(c *gin.Context) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
			})
		}, http.MethodGet, "/boom")

		entry := findAccessLog(t, recorded)
		require.NotNil(t, entry)
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	})

	t.Run("health probes logged at debug", func(t *testing.T) {
		_, recorded := serveWithAccessLog(zapcore.InfoLevel, func(e *gin.Engine) {
			e.GET("/health", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "healthy"})
			})
		}, http.MethodGet, "/health")

		// Observer level is info, so the debug entry is filtered out.
		assert.Nil(t, findAccessLog(t, recorded))
	})

	t.Run("includes query string", func(t *testing.T) {
		_, recorded := serveWithAccessLog(zapcore.InfoLevel, func(e *gin.Engine) {
			e.GET("/articles", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "ok"})
			})
		}, http.MethodGet, "/articles?search=cable&page=1")

		entry := findAccessLog(t, recorded)
		require.NotNil(t, entry)

		hasQuery := false
		for _, field := range entry.Context {
			if field.Key == "query" {
				hasQuery = true
				assert.Contains(t, field.String, "search=cable")
			}
		}
		assert.True(t, hasQuery)
	})

	t.Run("includes standard fields", func(t *testing.T) {
		_, recorded := serveWithAccessLog(zapcore.InfoLevel, func(e *gin.Engine) {
			e.POST("/requisitions", func(c *gin.Context) {
				c.JSON(http.StatusCreated, gin.H{"id": 1})
			})
		}, http.MethodPost, "/requisitions")

		entry := findAccessLog(t, recorded)
		require.NotNil(t, entry)

		fieldMap := make(map[string]zap.Field)
		for _, field := range entry.Context {
			fieldMap[field.Key] = field
		}
		for _, key := range []string{"status", "latency", "client_ip", "user_agent", "method", "path"} {
			assert.Contains(t, fieldMap, key)
		}
	})
}

func TestGinMiddleware_WithRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(requestIDContextKey, "req-abc-123")
		c.Next()
	})
	engine.Use(GinMiddleware(zap.New(core)))
	engine.GET("/suppliers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suppliers", nil))

	entry := findAccessLog(t, recorded)
	require.NotNil(t, entry)

	hasRequestID := false
	for _, field := range entry.Context {
		if field.Key == "request_id" {
			hasRequestID = true
			assert.Equal(t, "req-abc-123", field.String)
		}
	}
	assert.True(t, hasRequestID)
}

func TestRecovery(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	engine := gin.New()
	engine.Use(Recovery(zap.New(core)))
	engine.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)

	assert.NotPanics(t, func() {
		engine.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	logs := recorded.All()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Message, "Panic recovered")
}

func TestGetGinLogger(t *testing.T) {
	t.Run("returns request-scoped logger", func(t *testing.T) {
		core, _ := observer.New(zapcore.InfoLevel)
		var retrieved *zap.Logger

		engine := gin.New()
		engine.Use(GinMiddleware(zap.New(core)))
		engine.GET("/suppliers", func(c *gin.Context) {
			retrieved = GetGinLogger(c)
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suppliers", nil))

		assert.NotNil(t, retrieved)
	})

	t.Run("falls back to no-op when unset", func(t *testing.T) {
		var retrieved *zap.Logger

		engine := gin.New()
		engine.GET("/suppliers", func(c *gin.Context) {
			retrieved = GetGinLogger(c)
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suppliers", nil))

		require.NotNil(t, retrieved)
		assert.NotPanics(t, func() {
			retrieved.Info("test")
		})
	})
}
