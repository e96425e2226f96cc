package llmprovider

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "outreach-agent/pkg/llmprovider"

var tracer trace.Tracer = otel.Tracer(scopeName)
