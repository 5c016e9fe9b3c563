package telemetry

import (
	"context"
	"testing"
)

func TestTracerUsableWithoutSetup(t *testing.T) {
	// Before Setup runs, spans must be free no-ops, not nil panics.
	tr := Tracer("generation")
	if tr == nil {
		t.Fatal("expected a tracer before setup")
	}

	_, span := tr.Start(context.Background(), "generate_overworld")
	span.End()
	if span.SpanContext().IsValid() {
		t.Error("span recorded without a configured provider")
	}
}
