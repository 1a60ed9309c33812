package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/scriptkit/launcher/internal/config"
	"github.com/scriptkit/launcher/internal/protocol"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default(), log)
}

func TestSystemOpAdapterClipboardReadWrite(t *testing.T) {
	m := testModel(t)

	reply, ok := m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeClipboardWrite, RequestID: "1"}, []byte(`{"text":"hello"}`))
	if !ok {
		t.Fatal("expected clipboard write to be handled")
	}
	submit, ok := reply.(protocol.Submit)
	if !ok {
		t.Fatalf("expected Submit reply, got %T", reply)
	}
	if submit.RequestID != "1" {
		t.Errorf("request_id = %q, want %q", submit.RequestID, "1")
	}

	reply, _ = m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeClipboardRead, ID: "2"}, nil)
	submit, ok = reply.(protocol.Submit)
	if !ok {
		t.Fatalf("expected Submit reply, got %T", reply)
	}
	if submit.Value != "" {
		t.Errorf("expected default controller to read back empty text, got %v", submit.Value)
	}
}

func TestSystemOpAdapterClipboardHistoryMutationsWithoutStoreError(t *testing.T) {
	m := testModel(t)

	for _, typ := range []protocol.Type{
		protocol.TypeClipboardHistoryPin,
		protocol.TypeClipboardHistoryUnpin,
		protocol.TypeClipboardHistoryRemove,
		protocol.TypeClipboardHistoryClear,
	} {
		reply, ok := m.systemOpAdapter(protocol.Envelope{Type: typ, ID: "x"}, []byte(`{"id":"1"}`))
		if !ok {
			t.Fatalf("%s: expected op to be handled", typ)
		}
		errReply, ok := reply.(protocol.ClipboardHistoryError)
		if !ok {
			t.Fatalf("%s: expected ClipboardHistoryError without a store, got %T", typ, reply)
		}
		if errReply.Message == "" {
			t.Errorf("%s: expected a non-empty error message", typ)
		}
	}
}

func TestSystemOpAdapterKeyboardAndMouse(t *testing.T) {
	m := testModel(t)

	cases := []struct {
		typ  protocol.Type
		body string
	}{
		{protocol.TypeKeyboardType, `{"text":"hi"}`},
		{protocol.TypeKeyboardTap, `{"key":"a","modifiers":["cmd"]}`},
		{protocol.TypeMouseMove, `{"x":1,"y":2}`},
		{protocol.TypeMouseClick, `{"x":1,"y":2,"button":"left"}`},
		{protocol.TypeMouseSetPosition, `{"x":3,"y":4}`},
	}
	for _, c := range cases {
		reply, ok := m.systemOpAdapter(protocol.Envelope{Type: c.typ, ID: "1"}, []byte(c.body))
		if !ok {
			t.Fatalf("%s: expected op to be handled", c.typ)
		}
		if _, ok := reply.(protocol.Submit); !ok {
			t.Fatalf("%s: expected Submit reply, got %T", c.typ, reply)
		}
	}
}

func TestSystemOpAdapterWindowsListAndTile(t *testing.T) {
	m := testModel(t)

	reply, ok := m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeWindowsList, ID: "1"}, nil)
	if !ok {
		t.Fatal("expected windows_list to be handled")
	}
	listReply, ok := reply.(protocol.WindowsListReply)
	if !ok {
		t.Fatalf("expected WindowsListReply, got %T", reply)
	}
	if len(listReply.Windows) != 0 {
		t.Errorf("expected no windows from the default controller, got %d", len(listReply.Windows))
	}

	reply, ok = m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeWindowsTile, ID: "2"}, []byte(`{"id":"w1","region":"left_half"}`))
	if !ok {
		t.Fatal("expected windows_tile to be handled")
	}
	if _, ok := reply.(protocol.Submit); !ok {
		t.Fatalf("expected Submit reply, got %T", reply)
	}

	reply, ok = m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeWindowsTile, ID: "3"}, []byte(`{"id":"w1","region":"not_a_region"}`))
	if !ok {
		t.Fatal("expected windows_tile with a bad region to still be handled")
	}
	if _, ok := reply.(protocol.ErrorReply); !ok {
		t.Fatalf("expected ErrorReply for an unrecognized region, got %T", reply)
	}
}

func TestSystemOpAdapterScreenshotAndSelectedText(t *testing.T) {
	m := testModel(t)

	reply, ok := m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeCaptureScreenshot, ID: "1"}, nil)
	if !ok {
		t.Fatal("expected capture_screenshot to be handled")
	}
	if _, ok := reply.(protocol.ScreenshotResult); !ok {
		t.Fatalf("expected ScreenshotResult, got %T", reply)
	}

	reply, ok = m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeGetSelectedText, ID: "2"}, nil)
	if !ok {
		t.Fatal("expected get_selected_text to be handled")
	}
	if _, ok := reply.(protocol.StateResult); !ok {
		t.Fatalf("expected StateResult, got %T", reply)
	}

	reply, ok = m.systemOpAdapter(protocol.Envelope{Type: protocol.TypeSetSelectedText, ID: "3"}, []byte(`{"text":"x"}`))
	if !ok {
		t.Fatal("expected set_selected_text to be handled")
	}
	if _, ok := reply.(protocol.Submit); !ok {
		t.Fatalf("expected Submit reply, got %T", reply)
	}
}

func TestSystemOpAdapterAccessibilityPermission(t *testing.T) {
	m := testModel(t)

	for _, typ := range []protocol.Type{protocol.TypeAccessibilityPermissionHas, protocol.TypeAccessibilityPermissionRequest} {
		reply, ok := m.systemOpAdapter(protocol.Envelope{Type: typ, ID: "1"}, nil)
		if !ok {
			t.Fatalf("%s: expected op to be handled", typ)
		}
		result, ok := reply.(protocol.ElementsResult)
		if !ok {
			t.Fatalf("%s: expected ElementsResult, got %T", typ, reply)
		}
		if result.Granted {
			t.Errorf("%s: expected the default controller to deny permission", typ)
		}
	}
}

func TestSystemOpAdapterUnknownOpErrors(t *testing.T) {
	m := testModel(t)
	reply, ok := m.systemOpAdapter(protocol.Envelope{Type: protocol.Type("not_a_real_op"), ID: "1"}, nil)
	if !ok {
		t.Fatal("expected unknown ops to still produce a reply")
	}
	if _, ok := reply.(protocol.ErrorReply); !ok {
		t.Fatalf("expected ErrorReply, got %T", reply)
	}
}

func TestParseTileRegionRoundTrip(t *testing.T) {
	regions := []string{
		"left_half", "right_half", "top_half", "bottom_half",
		"top_left", "top_right", "bottom_left", "bottom_right", "fullscreen",
	}
	for _, r := range regions {
		if _, ok := parseTileRegion(r); !ok {
			t.Errorf("parseTileRegion(%q) unexpectedly failed", r)
		}
	}
	if _, ok := parseTileRegion("bogus"); ok {
		t.Error("parseTileRegion(\"bogus\") unexpectedly succeeded")
	}
}

func TestClipboardHistoryPayloadRoundTrips(t *testing.T) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(`{"id":"42"}`), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.ID != "42" {
		t.Errorf("id = %q, want %q", payload.ID, "42")
	}
}
