package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter cuenta las peticiones HTTP con etiquetas.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram duración de las peticiones en segundos.
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// RfidEventCounter eventos RFID procesados por tipo/ubicación/resultado.
	RfidEventCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfid_events_total",
			Help: "Total number of processed RFID readings",
		},
		[]string{"event_type", "location", "result"},
	)

	// AlertCounter alertas de estante abiertas/resueltas.
	AlertCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelf_alerts_total",
			Help: "Total number of shelf alert transitions",
		},
		[]string{"transition"}, // opened | resolved
	)
)

// HTTPMetrics recolector de métricas HTTP para un servicio.
type HTTPMetrics struct {
	ServiceName string
	registered  bool
}

// NewHTTPMetrics crea el recolector y registra las métricas en el registry global.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{ServiceName: serviceName}
	m.register()
	return m
}

func (m *HTTPMetrics) register() {
	if !m.registered {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(RfidEventCounter)
		prometheus.MustRegister(AlertCounter)
		m.registered = true
	}
}

// Middleware registra contador y duración de cada petición HTTP.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		method := c.Method()
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()
		RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).
			Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler devuelve el handler HTTP que expone las métricas Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
