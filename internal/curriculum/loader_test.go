package curriculum

import "testing"

const validPack = `
lessons:
  - slug: insulin-basics
    title: Insulin Basics
    body: Insulin is the hormone that moves sugar from your blood into your cells.
    steps:
      - Insulin is made in the pancreas and released when blood sugar rises.
      - Without enough insulin, sugar stays in the blood and levels climb.
    questions:
      - text: What does insulin do?
        options:
          - Moves sugar into cells
          - Raises blood sugar
        correct: 0
      - text: Where is insulin made?
        options:
          - In the liver
          - In the pancreas
        correct: 1
`

func TestParse_ValidPack(t *testing.T) {
	pack, err := Parse([]byte(validPack))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pack.Lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(pack.Lessons))
	}

	l := pack.Lessons[0]
	if l.Slug != "insulin-basics" {
		t.Fatalf("unexpected slug: %q", l.Slug)
	}
	if len(l.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(l.Steps))
	}
	if len(l.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(l.Questions))
	}
	if l.Questions[1].Correct != 1 {
		t.Fatalf("unexpected correct index: %d", l.Questions[1].Correct)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty pack", `lessons: []`},
		{"missing slug", "lessons:\n  - title: T\n    body: B"},
		{"missing title", "lessons:\n  - slug: s\n    body: B"},
		{"no content", "lessons:\n  - slug: s\n    title: T"},
		{"duplicate slug", "lessons:\n  - slug: s\n    title: T\n    body: B\n  - slug: s\n    title: T2\n    body: B2"},
		{"one option", "lessons:\n  - slug: s\n    title: T\n    body: B\n    questions:\n      - text: Q\n        options: [only]\n        correct: 0"},
		{"correct out of range", "lessons:\n  - slug: s\n    title: T\n    body: B\n    questions:\n      - text: Q\n        options: [a, b]\n        correct: 2"},
		{"not yaml", `{{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestToLesson(t *testing.T) {
	pack, err := Parse([]byte(validPack))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := toLesson(pack.Lessons[0])
	if !l.Active {
		t.Fatal("loaded lessons must start active")
	}
	if l.Steps[0].Ord != 0 || l.Steps[1].Ord != 1 {
		t.Fatal("step ordinals not dense")
	}
	if l.Questions[0].Ord != 0 || l.Questions[1].Ord != 1 {
		t.Fatal("question ordinals not dense")
	}
	if l.Questions[0].Options[0] != "Moves sugar into cells" {
		t.Fatalf("options not preserved: %+v", l.Questions[0].Options)
	}
}
