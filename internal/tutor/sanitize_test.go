package tutor

import (
	"strings"
	"testing"
)

func TestSanitize_StripsMarkup(t *testing.T) {
	in := "## Checking your sugar\n\n**Blood glucose** is measured with a _meter_. Try `washing` your hands first."
	out := Sanitize(in, 600)

	for _, ch := range []string{"#", "*", "_", "`"} {
		if strings.Contains(out, ch) {
			t.Fatalf("markup %q survived sanitization: %q", ch, out)
		}
	}
	if !strings.Contains(out, "Blood glucose is measured with a meter.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSanitize_StripsListMarkers(t *testing.T) {
	in := "- wash your hands\n1. prick the side of a finger\n* read the number"
	out := Sanitize(in, 600)

	if strings.Contains(out, "- ") || strings.Contains(out, "1. ") {
		t.Fatalf("list markers survived: %q", out)
	}
	if !strings.HasPrefix(out, "wash your hands") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSanitize_CapsAtTwoSentences(t *testing.T) {
	in := "First sentence. Second sentence. Third sentence. Fourth sentence."
	out := Sanitize(in, 600)

	if out != "First sentence. Second sentence." {
		t.Fatalf("expected two sentences, got: %q", out)
	}
}

func TestSanitize_ClipsToCharBudget(t *testing.T) {
	in := strings.Repeat("word ", 100)
	out := Sanitize(in, 50)

	if len([]rune(out)) > 50 {
		t.Fatalf("output exceeds budget: %d chars", len([]rune(out)))
	}
	if strings.HasSuffix(out, " ") {
		t.Fatalf("output ends mid-boundary: %q", out)
	}
}

func TestSanitize_AtMostOneQuestion(t *testing.T) {
	cases := []string{
		"What is insulin? And when do you take it?",
		"Insulin lowers sugar. What does it do? When is it taken?",
		"Do you know this? Really?",
	}
	for _, in := range cases {
		out := Sanitize(in, 600)
		if n := strings.Count(out, "?"); n > 1 {
			t.Fatalf("expected at most one question in %q, got %d", out, n)
		}
	}
}

func TestSanitize_TextAfterQuestionScrubbed(t *testing.T) {
	in := "What is a carb? Here is a hint you should not see."
	out := Sanitize(in, 600)

	if out != "What is a carb?" {
		t.Fatalf("trailing text survived: %q", out)
	}
}

func TestSanitize_EllipsisCountsAsOneSentenceEnd(t *testing.T) {
	in := "Well... that depends. On a few things. Like this."
	out := Sanitize(in, 600)

	if out != "Well... that depends." {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSanitize_DecimalNumbersAreNotSentenceEnds(t *testing.T) {
	in := "A typical starting dose is 2.5 units with meals. Check your level after 15 minutes."
	out := Sanitize(in, 600)

	if out != in {
		t.Fatalf("decimal point treated as sentence end: %q", out)
	}

	in = "Target range is 4.0 to 7.0 mmol/L before meals. Recheck in 15 minutes. Then log it."
	out = Sanitize(in, 600)

	if out != "Target range is 4.0 to 7.0 mmol/L before meals. Recheck in 15 minutes." {
		t.Fatalf("expected two full sentences, got: %q", out)
	}
}

func TestSanitize_PlainTextPassesThrough(t *testing.T) {
	in := "Insulin moves sugar from blood into cells. Can you name one time you would check your sugar?"
	out := Sanitize(in, 600)

	if out != in {
		t.Fatalf("clean input was altered: %q", out)
	}
}
