package tuitest

import (
	"strings"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mStudyPal\x1b[0m   \r\nExplain Topic\x1b[2J\x1b[HExplaining...\r\n\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %#v", len(frames), frames)
	}
	if frames[0].Plain != "StudyPal\nExplain Topic" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	if frames[1].Index != 1 || frames[1].Plain != "Explaining..." {
		t.Fatalf("unexpected second frame %#v", frames[1])
	}
}

func TestParseFramesWithoutSeparator(t *testing.T) {
	frames := parseFrames([]byte("\x1b]0;title\x07hello\r\n"))
	if len(frames) != 1 || frames[0].Plain != "hello" {
		t.Fatalf("unexpected frames %#v", frames)
	}
}

func TestLastFrameContaining(t *testing.T) {
	rec := &Recording{Frames: []Frame{
		{Index: 0, Plain: "Explanation: Gravity"},
		{Index: 1, Plain: "Explaining..."},
		{Index: 2, Plain: "Explanation: Gravity\nfalls"},
	}}
	frame, ok := rec.LastFrameContaining("Explanation:")
	if !ok || frame.Index != 2 {
		t.Fatalf("expected frame 2, got %#v %v", frame, ok)
	}
	if _, ok := rec.LastFrameContaining("Summary"); ok {
		t.Fatal("unexpected match")
	}
	var nilRec *Recording
	if _, ok := nilRec.FinalFrame(); ok {
		t.Fatal("nil recording has no frames")
	}
}

func TestType(t *testing.T) {
	steps := Type("héllo")
	if len(steps) != 5 {
		t.Fatalf("expected one step per rune, got %d", len(steps))
	}
	var b strings.Builder
	for _, s := range steps {
		b.Write(s.Input)
	}
	if b.String() != "héllo" {
		t.Fatalf("unexpected replay %q", b.String())
	}
}
