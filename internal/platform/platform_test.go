package platform

import "testing"

func TestDefaultControllerDisplayUnderMouseReportsNone(t *testing.T) {
	c := NewDefaultController(nil)
	if _, ok := c.DisplayUnderMouse(); ok {
		t.Fatal("expected default controller to report no display under mouse")
	}
}

func TestDefaultControllerAccessibilityDeniedByDefault(t *testing.T) {
	c := NewDefaultController(nil)
	if c.HasAccessibilityPermission() {
		t.Fatal("expected default controller to report no accessibility permission")
	}
}

func TestDefaultControllerWindowOpsNoOpWithoutError(t *testing.T) {
	c := NewDefaultController(nil)
	if err := c.FocusWindowByID("x"); err != nil {
		t.Fatalf("FocusWindowByID: %v", err)
	}
	if err := c.TileWindowByID("x", TileFullscreen); err != nil {
		t.Fatalf("TileWindowByID: %v", err)
	}
	if _, err := c.ListWindows(); err != nil {
		t.Fatalf("ListWindows: %v", err)
	}
}

func TestDefaultControllerInputOpsNoOpWithoutError(t *testing.T) {
	c := NewDefaultController(nil)
	if err := c.TypeText("hello"); err != nil {
		t.Fatalf("TypeText: %v", err)
	}
	if err := c.TapKey("a", []string{"cmd"}); err != nil {
		t.Fatalf("TapKey: %v", err)
	}
	if err := c.MoveMouse(1, 2); err != nil {
		t.Fatalf("MoveMouse: %v", err)
	}
	if err := c.ClickMouse(1, 2, "left"); err != nil {
		t.Fatalf("ClickMouse: %v", err)
	}
	if err := c.SetMousePosition(1, 2); err != nil {
		t.Fatalf("SetMousePosition: %v", err)
	}
	if _, err := c.CaptureScreenshot(); err != nil {
		t.Fatalf("CaptureScreenshot: %v", err)
	}
	if _, err := c.GetSelectedText(); err != nil {
		t.Fatalf("GetSelectedText: %v", err)
	}
	if err := c.SetSelectedText("x"); err != nil {
		t.Fatalf("SetSelectedText: %v", err)
	}
}

func TestVibrancyStringValues(t *testing.T) {
	cases := map[Vibrancy]string{
		VibrancyHUD: "hud", VibrancyPopover: "popover", VibrancyMenu: "menu",
		VibrancySidebar: "sidebar", VibrancyContent: "content", VibrancyNone: "none",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Errorf("Vibrancy(%d).String() = %q, want %q", v, got, want)
		}
	}
}
