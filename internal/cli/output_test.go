package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func testOutput(jsonMode bool) (*Output, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Output{writer: buf, jsonMode: jsonMode, colorEnabled: false}, buf
}

func TestOutputJSON(t *testing.T) {
	out, buf := testOutput(true)
	if err := out.JSON(map[string]string{"theme": "dark"}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"theme": "dark"`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestFormatGainWithoutColor(t *testing.T) {
	out, _ := testOutput(false)

	if got := out.FormatGain(decimal.NewFromInt(200)); got != "+$200.00" {
		t.Errorf("FormatGain(200) = %q", got)
	}
	if got := out.FormatGain(decimal.NewFromInt(-50)); got != "-$50.00" {
		t.Errorf("FormatGain(-50) = %q", got)
	}
}

func TestTableAlignsColumns(t *testing.T) {
	out, buf := testOutput(false)

	table := NewTable(out, "TICKER", "PRICE")
	table.AddRow("AAPL", "$182.50")
	table.AddRow("BRK.B", "$410.00")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + separator + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "TICKER") {
		t.Errorf("header = %q", lines[0])
	}
	// Both data rows start their second column at the same offset
	if strings.Index(lines[2], "$") != strings.Index(lines[3], "$") {
		t.Errorf("columns misaligned:\n%s\n%s", lines[2], lines[3])
	}
}

func TestStripANSI(t *testing.T) {
	colored := ColorGreen + "+2.50%" + ColorReset
	if got := stripANSI(colored); got != "+2.50%" {
		t.Errorf("stripANSI = %q", got)
	}
}
