package embedding

import (
	"errors"
	"strings"
	"testing"
)

func TestPrepareTextEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := prepareText(raw, "", InstructionNone, 3)
		if err == nil {
			t.Fatalf("%q: expected validation error", raw)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%q: expected *ValidationError, got %T", raw, err)
		}
		if ve.Position != 3 {
			t.Errorf("%q: expected position 3, got %d", raw, ve.Position)
		}
	}
}

func TestPrepareTextStripsControlChars(t *testing.T) {
	got, err := prepareText("hel\x00lo\x1fwor\x7fld", "", InstructionNone, -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "helloworld" {
		t.Fatalf("expected control characters stripped, got %q", got)
	}
}

func TestPrepareTextPrefix(t *testing.T) {
	got, err := prepareText("hello", "passage:", InstructionNone, -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "passage: hello" {
		t.Fatalf("expected prefix joined by space, got %q", got)
	}
}

func TestPrepareTextQueryInstruction(t *testing.T) {
	got, err := prepareText("what is Go", "", InstructionQuery, -1)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "Instruct: Given a query") {
		t.Fatalf("expected query template, got %q", got)
	}
	if !strings.HasSuffix(got, "Query: what is Go") {
		t.Fatalf("expected query suffix, got %q", got)
	}
}

func TestPrepareTextDocumentInstructionWrapsPrefix(t *testing.T) {
	// Prefix is applied first, the instruction template wraps the result.
	got, err := prepareText("Go is a language", "passage:", InstructionDocument, -1)
	if err != nil {
		t.Fatal(err)
	}
	want := documentTemplate + "passage: Go is a language"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPrepareTextDeterministic(t *testing.T) {
	a, _ := prepareText("same input", "p:", InstructionQuery, -1)
	b, _ := prepareText("same input", "p:", InstructionQuery, -1)
	if a != b {
		t.Fatalf("prepare not deterministic: %q vs %q", a, b)
	}
}
