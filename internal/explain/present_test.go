package explain

import "testing"

func TestPresentState(t *testing.T) {
	result := Result{Topic: "Photosynthesis", Explanation: "Photosynthesis is...", Success: true}

	cases := []struct {
		name  string
		topic string
		state State
		check func(t *testing.T, p Presentation)
	}{
		{
			name:  "idle empty topic",
			topic: "  ",
			state: Idle(),
			check: func(t *testing.T, p Presentation) {
				if p.CanSubmit {
					t.Fatal("blank topic should not be submittable")
				}
				if p.ButtonLabel != "Explain Topic" {
					t.Fatalf("unexpected label %q", p.ButtonLabel)
				}
				if p.HasResult || p.ErrorMessage != "" {
					t.Fatalf("idle should show nothing, got %#v", p)
				}
			},
		},
		{
			name:  "loading disables input",
			topic: "Photosynthesis",
			state: Loading(),
			check: func(t *testing.T, p Presentation) {
				if !p.InputDisabled || p.CanSubmit {
					t.Fatalf("loading should disable the trigger, got %#v", p)
				}
				if p.ButtonLabel != "Explaining..." {
					t.Fatalf("unexpected label %q", p.ButtonLabel)
				}
			},
		},
		{
			name:  "success",
			topic: "Photosynthesis",
			state: Succeeded(result),
			check: func(t *testing.T, p Presentation) {
				if !p.HasResult || p.Heading != "Explanation: Photosynthesis" || p.Body != "Photosynthesis is..." {
					t.Fatalf("unexpected projection %#v", p)
				}
				if !p.Succeeded || p.Footer == "" {
					t.Fatalf("success flag should drive the footer, got %#v", p)
				}
				if !p.CanSubmit {
					t.Fatal("a new submission should be allowed after success")
				}
			},
		},
		{
			name:  "unsuccessful result has no footer",
			topic: "Photosynthesis",
			state: Succeeded(Result{Topic: "Photosynthesis", Explanation: "Sorry.", Success: false}),
			check: func(t *testing.T, p Presentation) {
				if p.Succeeded || p.Footer != "" {
					t.Fatalf("footer should be hidden, got %#v", p)
				}
			},
		},
		{
			name:  "error",
			topic: "Quantum Physics",
			state: Failed(MessageRequestFailed),
			check: func(t *testing.T, p Presentation) {
				if p.ErrorMessage != MessageRequestFailed {
					t.Fatalf("unexpected error message %q", p.ErrorMessage)
				}
				if p.HasResult {
					t.Fatal("error must not show a result")
				}
				if p.Topic != "Quantum Physics" {
					t.Fatalf("topic should be kept for display, got %q", p.Topic)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, PresentState(tc.topic, tc.state))
		})
	}
}
