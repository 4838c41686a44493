package intelligence

import (
	"context"
	"errors"
	"testing"
)

// scriptedGenerator replays canned responses in order.
type scriptedGenerator struct {
	responses []string
	err       error
	calls     int
}

func (g *scriptedGenerator) next(context.Context) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	resp := g.responses[g.calls]
	g.calls++
	return resp, nil
}

func TestGenerateJSONFirstResponseDecodes(t *testing.T) {
	svc := &DefaultAIService{}
	gen := &scriptedGenerator{responses: []string{`{"a":1}`}}

	var out struct{ A int }
	raw, err := svc.generateJSON(context.Background(), &out, gen.next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.A != 1 {
		t.Errorf("A = %d, want 1", out.A)
	}
	if raw != `{"a":1}` {
		t.Errorf("raw = %q", raw)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestGenerateJSONRetriesOnceOnMalformed(t *testing.T) {
	svc := &DefaultAIService{}
	gen := &scriptedGenerator{responses: []string{
		"Sure! Here is the data you asked for.",
		"```json\n{\"a\":2}\n```",
	}}

	var out struct{ A int }
	raw, err := svc.generateJSON(context.Background(), &out, gen.next)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.A != 2 {
		t.Errorf("A = %d, want 2 from the second response", out.A)
	}
	if raw != "```json\n{\"a\":2}\n```" {
		t.Errorf("raw = %q, want the second raw response", raw)
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
}

func TestGenerateJSONGivesUpAfterTwoMalformed(t *testing.T) {
	svc := &DefaultAIService{}
	gen := &scriptedGenerator{responses: []string{"not json", "still not json"}}

	var out struct{ A int }
	if _, err := svc.generateJSON(context.Background(), &out, gen.next); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("error = %v, want ErrMalformedResponse", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want exactly 2", gen.calls)
	}
}

func TestGenerateJSONPropagatesGeneratorError(t *testing.T) {
	svc := &DefaultAIService{}
	genErr := errors.New("upstream unavailable")
	gen := &scriptedGenerator{err: genErr}

	var out struct{ A int }
	if _, err := svc.generateJSON(context.Background(), &out, gen.next); !errors.Is(err, genErr) {
		t.Errorf("error = %v, want the generator error", err)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here you go:\n{\"a\":1}", `{"a":1}`},
		{"trailing prose", "{\"a\":1}\nHope that helps!", `{"a":1}`},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripFences(tc.in); got != tc.want {
				t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd" {
		t.Errorf("truncate = %q, want abcd", got)
	}
	if got := truncate("ab", 4); got != "ab" {
		t.Errorf("truncate = %q, want ab", got)
	}
}
