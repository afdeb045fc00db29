package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/commerce-report-api/pkg/log"
)

// Requisições acima deste limite geram um aviso de lentidão
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra informações sobre cada requisição HTTP e
// propaga o ID de correlação para o cliente
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Gera um ID de correlação para esta requisição
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			w.Header().Set("X-Correlation-ID", correlationID)

			// Cria um writer personalizado para capturar o status code
			lrw := newLoggingResponseWriter(w)

			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				// Formato conciso para desenvolvimento
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logCompletion(r, lrw.statusCode, correlationID, elapsed, isDev)
		})
	}
}

// logCompletion registra o resultado da requisição no nível adequado ao
// status code
func logCompletion(r *http.Request, statusCode int, correlationID string, elapsed time.Duration, isDev bool) {
	fields := log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": statusCode,
		"duration_ms": elapsed.Milliseconds(),
	}
	if !isDev {
		fields["correlation_id"] = correlationID
	}

	logger := log.L.WithFields(fields)

	msg := "Requisição finalizada"
	if isDev {
		symbol := "✓"
		if statusCode >= 400 {
			symbol = "✗"
		}
		msg = fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
	}

	switch {
	case statusCode >= 500:
		logger.Error(msg)
	case statusCode >= 400:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}

	if elapsed > slowRequestThreshold {
		log.L.WithFields(fields).Warnf("Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, elapsed.Milliseconds())
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter é um wrapper para http.ResponseWriter para capturar o status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// newLoggingResponseWriter cria um novo loggingResponseWriter
func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// Hook para erros não tratados
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// Captura a pilha de chamadas
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC na aplicação")

						// Em desenvolvimento, imprimir o stack trace diretamente no console
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						correlationID := log.GetCorrelationID(r.Context())

						logger := log.L.WithFields(log.Fields{
							"correlation_id": correlationID,
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					// Sempre retorna 500 para o cliente
					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
