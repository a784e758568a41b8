package panels

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleAppendSplitsLines(t *testing.T) {
	c := NewConsole("console", "/bin/sh")
	c.Append([]byte("one\r\ntwo\npartial"))

	if len(c.lines) != 2 {
		t.Fatalf("lines = %d, want 2 complete lines", len(c.lines))
	}
	if c.lines[0] != "one" || c.lines[1] != "two" {
		t.Fatalf("lines = %v", c.lines)
	}
	if c.partial != "partial" {
		t.Fatalf("partial = %q, want %q", c.partial, "partial")
	}

	// The rest of the line arrives later.
	c.Append([]byte(" done\n"))
	if c.lines[2] != "partial done" {
		t.Fatalf("lines = %v, want the partial completed", c.lines)
	}
	if c.partial != "" {
		t.Fatalf("partial = %q, want empty", c.partial)
	}
}

func TestConsoleAppendStripsEscapes(t *testing.T) {
	c := NewConsole("console", "/bin/sh")
	c.Append([]byte("\x1b[31mred\x1b[0m text\x1b]0;title\x07\n"))
	if c.lines[0] != "red text" {
		t.Fatalf("line = %q, want escapes removed", c.lines[0])
	}
}

func TestConsoleScrollbackCap(t *testing.T) {
	c := NewConsole("console", "/bin/sh")
	var b bytes.Buffer
	for i := 0; i < consoleScrollback+100; i++ {
		b.WriteString("line\n")
	}
	c.Append(b.Bytes())
	if len(c.lines) != consoleScrollback {
		t.Fatalf("lines = %d, want cap %d", len(c.lines), consoleScrollback)
	}
}

func TestConsoleNotStarted(t *testing.T) {
	c := NewConsole("console", "/bin/sh")
	if _, err := c.ReadOutput(); err == nil {
		t.Fatal("ReadOutput before Start should error")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close before Start should be a no-op, got %v", err)
	}
}

func TestKeyBytes(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"enter", "\r"},
		{"backspace", "\x7f"},
		{"ctrl+c", "\x03"},
		{"up", "\x1b[A"},
		{"a", "a"},
		{"Z", "Z"},
		{" ", " "},
		{"f1", ""}, // unmapped keys are not consumed
	}
	for _, tt := range tests {
		got := keyBytes(tt.key)
		if tt.want == "" {
			if got != nil {
				t.Errorf("keyBytes(%q) = %q, want nil", tt.key, got)
			}
			continue
		}
		if string(got) != tt.want {
			t.Errorf("keyBytes(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLogFollowMode(t *testing.T) {
	l := NewLog("log", 3)
	l.Logf("a %d", 1)
	l.Append("b")
	l.Append("c")
	l.Append("d")
	if len(l.lines) != 3 {
		t.Fatalf("lines = %d, want cap 3", len(l.lines))
	}
	if l.lines[0] != "b" {
		t.Fatalf("oldest line = %q, want the first trimmed", l.lines[0])
	}
	if !l.follow {
		t.Fatal("appends while following must keep following")
	}
}

func TestInspectorRender(t *testing.T) {
	p := NewInspector("inspector")
	out := p.Render(testBounds(40, 10))
	if !strings.Contains(out, "nothing selected") {
		t.Fatalf("empty inspector = %q", out)
	}

	p.SetObject("camera", []Property{
		{Name: "fov", Value: float64(60)},
		{Name: "near", Value: 0.1},
	})
	out = p.Render(testBounds(40, 10))
	for _, want := range []string{"camera", "fov", "60", "near", "0.1"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspector output missing %q", want)
		}
	}
	if p.CanClose() {
		t.Fatal("inspector must not be closable")
	}
}

func TestOutlineSelection(t *testing.T) {
	var selected string
	o := NewOutline("outline", []Entity{
		{Name: "camera", Kind: "Camera"},
		{Name: "player", Kind: "Mesh"},
	}, func(e Entity) { selected = e.Name })

	o.HandleEvent(keyEvent("down"))
	o.HandleEvent(keyEvent("enter"))
	if selected != "player" {
		t.Fatalf("selected = %q, want player", selected)
	}

	if o.HandleEvent(keyEvent("x")) {
		t.Fatal("unbound keys pass through")
	}
}
