package cli

import (
	"strings"
	"testing"
)

func TestSetColorEnabled_OffStripsStyling(t *testing.T) {
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })

	outputs := []string{
		RenderTitle("Today  ·  2024-03-10"),
		RenderTable(Table{
			Title:   "Funds",
			Headers: []string{"Name", "Balance"},
			Rows:    [][]string{{"Emergency", "$100.00"}, {"Vacation", "$5,000.00"}},
		}),
		RenderProgress(1, 3, 20),
		IncomeStyle.Render("+$250.00"),
		DoneStyle.Render("water plants"),
	}
	for _, out := range outputs {
		if strings.ContainsRune(out, '\x1b') {
			t.Fatalf("styling disabled but output has escape codes: %q", out)
		}
	}
}

func TestRenderProgress_PlainBarWidth(t *testing.T) {
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })

	out := RenderProgress(1, 2, 10)
	if !strings.HasPrefix(out, strings.Repeat("█", 5)+strings.Repeat("░", 5)) {
		t.Fatalf("half-done bar = %q", out)
	}
	if !strings.HasSuffix(out, "1/2 done") {
		t.Fatalf("missing counter: %q", out)
	}
}
