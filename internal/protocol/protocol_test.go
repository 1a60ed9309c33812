package protocol

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(Arg{Envelope: Envelope{Type: TypeArg, ID: "1"}, Placeholder: "Enter name"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("expected trailing newline, got %q", buf.String())
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", buf.String())
	}

	dec := NewDecoder(&buf, nil)
	defer dec.Close()
	env, raw, ok := dec.Next()
	if !ok {
		t.Fatalf("expected a message")
	}
	if env.Type != TypeArg || env.ID != "1" {
		t.Fatalf("envelope = %+v", env)
	}

	var arg Arg
	if err := json.Unmarshal(raw, &arg); err != nil {
		t.Fatalf("decode typed: %v", err)
	}
	if arg.Placeholder != "Enter name" {
		t.Errorf("placeholder = %q", arg.Placeholder)
	}
}

func TestDecoderSkipsBlankLines(t *testing.T) {
	input := "\n\n{\"type\":\"hide\"}\n"
	dec := NewDecoder(strings.NewReader(input), nil)
	defer dec.Close()

	env, _, ok := dec.Next()
	if !ok || env.Type != TypeHide {
		t.Fatalf("env=%+v ok=%v", env, ok)
	}
	if _, _, ok := dec.Next(); ok {
		t.Fatalf("expected EOF after the one message")
	}
}

func TestDecoderSkipsUnparseableLineAndContinues(t *testing.T) {
	input := "not json at all\n{\"type\":\"exit\"}\n"
	dec := NewDecoder(strings.NewReader(input), nil)
	defer dec.Close()

	env, _, ok := dec.Next()
	if !ok || env.Type != TypeExit {
		t.Fatalf("expected to recover and parse the second line, got env=%+v ok=%v", env, ok)
	}
}

func TestDecoderSkipsLineWithNoType(t *testing.T) {
	input := "{\"id\":\"1\"}\n{\"type\":\"show\"}\n"
	dec := NewDecoder(strings.NewReader(input), nil)
	defer dec.Close()

	env, _, ok := dec.Next()
	if !ok || env.Type != TypeShow {
		t.Fatalf("expected to skip the typeless line, got env=%+v ok=%v", env, ok)
	}
}

func TestTruncateClipboardTextUnderLimitUnchanged(t *testing.T) {
	short := "hello"
	if got := TruncateClipboardText(short); got != short {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestTruncateClipboardTextOverLimit(t *testing.T) {
	long := strings.Repeat("x", 2000)
	got := TruncateClipboardText(long)
	if !strings.HasSuffix(got, "... (truncated)") {
		t.Errorf("expected truncation suffix, got suffix %q", got[len(got)-20:])
	}
	if len(got) >= len(long) {
		t.Errorf("expected truncated text to be shorter than the original")
	}
}

func TestImagePlaceholder(t *testing.T) {
	if got := ImagePlaceholder("abc123"); got != "[image:abc123]" {
		t.Errorf("got %q", got)
	}
}

func TestShouldStreamBase64(t *testing.T) {
	if ShouldStreamBase64(100) {
		t.Errorf("small payload should not stream")
	}
	if !ShouldStreamBase64(2 << 20) {
		t.Errorf("2MB payload should stream")
	}
}

func TestEncodeBase64StreamingMatchesStdlib(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	var streamed bytes.Buffer
	if err := EncodeBase64Streaming(&streamed, bytes.NewReader(data)); err != nil {
		t.Fatalf("EncodeBase64Streaming: %v", err)
	}

	want := "dGhlIHF1aWNrIGJyb3duIGZveCBqdW1wcyBvdmVyIHRoZSBsYXp5IGRvZw=="
	if streamed.String() != want {
		t.Errorf("got %q, want %q", streamed.String(), want)
	}
}

func TestSelectMultipleSubmitsArray(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	sel := Select{
		Envelope: Envelope{Type: TypeSubmit, RequestID: "r1"},
		Options:  []SelectOption{{Name: "a", Value: "a"}},
		Multiple: true,
	}
	_ = enc.Encode(sel)

	submit := Submit{Envelope: Envelope{Type: TypeSubmitReply, RequestID: "r1"}, Value: []string{"a", "b"}}
	buf.Reset()
	if err := enc.Encode(submit); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := NewDecoder(&buf, nil)
	defer dec.Close()
	_, raw, ok := dec.Next()
	if !ok {
		t.Fatalf("expected a message")
	}
	var got Submit
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	arr, ok := got.Value.([]interface{})
	if !ok || len(arr) != 2 {
		t.Fatalf("expected a 2-element array value, got %+v", got.Value)
	}
}
