package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты для label "result".
const (
	ResultOK       = "ok"
	ResultFailed   = "failed"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultPartial  = "partial"
)

var (
	deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linker_channel_deliveries_total",
		Help: "Channel deliveries by transport, transport kind and result",
	}, []string{"transport", "kind", "result"})

	deliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linker_channel_delivery_duration_seconds",
		Help:    "Duration of a single channel delivery",
		Buckets: prometheus.DefBuckets,
	}, []string{"transport"})

	linkDispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linker_link_dispatches_total",
		Help: "Link dispatches by link and result",
	}, []string{"link", "result"})

	workflowExecutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linker_workflow_executions_total",
		Help: "Workflow executions by workflow and result",
	}, []string{"workflow", "result"})

	workflowStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linker_workflow_steps_total",
		Help: "Workflow steps by workflow and result",
	}, []string{"workflow", "result"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linker_api_http_requests_total",
		Help: "Total HTTP requests handled by linker-api",
	}, []string{"method", "route", "status"})
)

// ObserveDelivery учитывает одну доставку через канал.
func ObserveDelivery(transport, kind, result string, d time.Duration) {
	deliveriesTotal.WithLabelValues(transport, kind, result).Inc()
	deliveryDuration.WithLabelValues(transport).Observe(d.Seconds())
}

// ObserveLinkDispatch учитывает вызов отправки link.
func ObserveLinkDispatch(link, result string) {
	linkDispatchesTotal.WithLabelValues(link, result).Inc()
}

// ObserveWorkflow учитывает выполнение workflow.
func ObserveWorkflow(workflow, result string) {
	workflowExecutionsTotal.WithLabelValues(workflow, result).Inc()
}

// ObserveStep учитывает выполнение шага workflow.
func ObserveStep(workflow string, success bool) {
	result := ResultOK
	if !success {
		result = ResultFailed
	}
	workflowStepsTotal.WithLabelValues(workflow, result).Inc()
}

// ObserveHTTPRequest учитывает HTTP запрос к API.
func ObserveHTTPRequest(method, route string, status int) {
	httpRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
