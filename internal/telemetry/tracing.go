package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName: имя библиотеки инструментирования для OpenTelemetry.
const instrumentationName = "github.com/shaiso/Linker"

// Tracer возвращает tracer глобального TracerProvider.
// Пока провайдер не настроен, спаны ничего не делают.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// EndSpan завершает спан, отмечая ошибку, если она есть.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
