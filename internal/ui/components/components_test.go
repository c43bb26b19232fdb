package components

import (
	"strings"
	"testing"
	"time"

	"github.com/sadopc/sitetraffic/internal/ui/theme"
)

// helpers

func testStyles() theme.Styles {
	return theme.NewStyles(theme.Default())
}

func testTheme() theme.Theme {
	return theme.Default()
}

// ─────────────────────────────────────────────────────────────────────────────
// StatusBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestStatusBar_NewDefault(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	if sb.state != "initializing" {
		t.Fatalf("expected initial state initializing, got %q", sb.state)
	}
}

func TestStatusBar_SetResult(t *testing.T) {
	sb := NewStatusBar(testTheme(), testStyles())
	sb.SetResult("network", 6, 150*time.Millisecond, 2048)

	if sb.source != "network" || sb.months != 6 {
		t.Fatalf("unexpected source/months %q/%d", sb.source, sb.months)
	}
	if sb.duration != 150*time.Millisecond {
		t.Fatalf("expected duration 150ms, got %v", sb.duration)
	}
	if sb.size != 2048 {
		t.Fatalf("expected size 2048, got %d", sb.size)
	}
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*StatusBar)
		want  []string
	}{
		{
			name:  "state badge",
			setup: func(sb *StatusBar) { sb.SetState("loading") },
			want:  []string{"LOADING"},
		},
		{
			name: "network result",
			setup: func(sb *StatusBar) {
				sb.SetState("ready")
				sb.SetResult("network", 3, 250*time.Millisecond, 2048)
			},
			want: []string{"READY", "network", "3 months", "250ms", "2.0 KiB"},
		},
		{
			name: "cache result has no timing",
			setup: func(sb *StatusBar) {
				sb.SetResult("cache", 2, 0, 0)
			},
			want: []string{"cache", "2 months"},
		},
		{
			name: "failure note",
			setup: func(sb *StatusBar) {
				sb.SetState("failed")
				sb.SetNote("fetch failed: connection refused", true)
			},
			want: []string{"FAILED", "fetch failed: connection refused"},
		},
		{
			name: "note replaces result details",
			setup: func(sb *StatusBar) {
				sb.SetResult("network", 3, 0, 0)
				sb.SetNote("API returned 503", true)
			},
			want: []string{"API returned 503"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewStatusBar(testTheme(), testStyles())
			sb.SetWidth(120)
			tt.setup(&sb)

			view := sb.View()
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("view should contain %q, got %q", w, view)
				}
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Toast tests
// ─────────────────────────────────────────────────────────────────────────────

func TestToast_NewDefault(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	if toast.Visible {
		t.Fatal("toast should start hidden")
	}
}

func TestToast_Show(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())

	cmd := toast.Show("Copied!", false, 2*time.Second)
	if !toast.Visible {
		t.Fatal("toast should be visible after Show")
	}
	if toast.text != "Copied!" {
		t.Fatalf("expected text 'Copied!', got '%s'", toast.text)
	}
	if toast.isError {
		t.Fatal("toast should not be error")
	}
	if toast.duration != 2*time.Second {
		t.Fatalf("expected duration 2s, got %v", toast.duration)
	}
	if cmd == nil {
		t.Fatal("Show should return a tick cmd for auto-dismiss")
	}
}

func TestToast_Show_ErrorState(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	toast.Show("Failed!", true, 0)
	if !toast.isError {
		t.Fatal("toast should be in error state")
	}
	// Zero duration should default to 3s
	if toast.duration != 3*time.Second {
		t.Fatalf("expected default 3s duration, got %v", toast.duration)
	}
}

func TestToast_Update_DismissMsg(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	toast.Show("hello", false, time.Second)

	toast, _ = toast.Update(toastDismissMsg{})
	if toast.Visible {
		t.Fatal("toast should be hidden after dismiss")
	}
	if toast.text != "" {
		t.Fatalf("toast text should be empty after dismiss, got '%s'", toast.text)
	}
}

func TestToast_View(t *testing.T) {
	toast := NewToast(testTheme(), testStyles())
	if view := toast.View(); view != "" {
		t.Fatalf("hidden toast should render empty string, got: %q", view)
	}

	toast.Show("Success!", false, time.Second)
	if view := toast.View(); !strings.Contains(view, "Success!") {
		t.Error("toast view should contain the message text")
	}
}
