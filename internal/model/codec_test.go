package model

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	in := []Task{
		{ID: "a", Title: "Buy milk", Text: "", Completed: false, CreatedAt: created, Priority: PriorityMedium, Category: "Shopping"},
		{ID: "b", Title: "File taxes", Text: "Before the deadline", Completed: true, CreatedAt: created.Add(-time.Hour), Priority: PriorityHigh, Category: "Finance"},
	}

	raw, err := EncodeTasks(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	out, err := DecodeTasks(raw, now)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d tasks, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("task %d changed across round trip:\n in: %#v\nout: %#v", i, in[i], out[i])
		}
	}
}

func TestDecodeDefaultsMissingTitle(t *testing.T) {
	raw := `[{"id":"x","text":"no title here","completed":false,"createdAt":"2026-08-29T09:30:00Z","priority":"low","category":"Work"}]`
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	out, err := DecodeTasks(raw, now)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out[0].Title != "Untitled" {
		t.Fatalf("expected default title, got %q", out[0].Title)
	}
}

func TestDecodeDefaultsBadCreatedAt(t *testing.T) {
	raw := `[{"id":"x","title":"ok","createdAt":"not-a-time","priority":"medium"}]`
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	out, err := DecodeTasks(raw, now)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out[0].CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt defaulted to now, got %v", out[0].CreatedAt)
	}
}

func TestDecodeDefaultsUnknownPriority(t *testing.T) {
	raw := `[{"id":"x","title":"ok","createdAt":"2026-08-29T09:30:00Z","priority":"urgent"}]`
	out, err := DecodeTasks(raw, time.Now().UTC())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out[0].Priority != PriorityMedium {
		t.Fatalf("expected medium fallback, got %q", out[0].Priority)
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	if _, err := DecodeTasks("{not json", time.Now().UTC()); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestEncodeUsesWireFieldNames(t *testing.T) {
	created := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	raw, err := EncodeTasks([]Task{{ID: "a", Title: "t", CreatedAt: created, Priority: PriorityLow}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, field := range []string{`"id"`, `"title"`, `"text"`, `"completed"`, `"createdAt"`, `"priority"`, `"category"`} {
		if !strings.Contains(raw, field) {
			t.Fatalf("expected %s in payload: %s", field, raw)
		}
	}
}

func TestParamsRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	in := Task{ID: "a", Title: "Buy milk", Text: "2L", Completed: true, CreatedAt: created, Priority: PriorityHigh, Category: "Shopping"}

	out := TaskFromParams(in.Params())
	if out != in {
		t.Fatalf("task changed across param hand-off:\n in: %#v\nout: %#v", in, out)
	}
}

func TestTaskFromParamsBadValues(t *testing.T) {
	out := TaskFromParams(map[string]string{
		ParamID:        "a",
		ParamTitle:     "t",
		ParamCompleted: "maybe",
		ParamCreatedAt: "garbage",
	})
	if out.Completed {
		t.Fatal("expected completed false for unparseable flag")
	}
	if !out.CreatedAt.IsZero() {
		t.Fatalf("expected zero createdAt marker, got %v", out.CreatedAt)
	}
}
