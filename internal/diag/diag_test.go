package diag

import (
	"testing"

	"garnet/internal/source"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnterminatedString, "L1002"},
		{SynExpectEnd, "S2005"},
		{WarnAmbiguousSlash, "W3001"},
		{UnknownCode, "D0000"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", uint16(tt.code), got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if got := SevError.String(); got != "ERROR" {
		t.Errorf("SevError = %q", got)
	}
	if got := SevWarning.String(); got != "WARNING" {
		t.Errorf("SevWarning = %q", got)
	}
	if got := SevInfo.String(); got != "INFO" {
		t.Errorf("SevInfo = %q", got)
	}
}

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 5; i++ {
		added := bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken})
		if want := i < 2; added != want {
			t.Errorf("Add %d = %v, want %v", i, added, want)
		}
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagUnbounded(t *testing.T) {
	bag := NewBag(0)
	for i := 0; i < 100; i++ {
		if !bag.Add(Diagnostic{Severity: SevWarning, Code: WarnUnusedLiteral}) {
			t.Fatalf("unbounded bag dropped diagnostic %d", i)
		}
	}
	if bag.Len() != 100 {
		t.Errorf("Len = %d, want 100", bag.Len())
	}
	if bag.HasErrors() {
		t.Error("warnings only, HasErrors should be false")
	}
	if !bag.HasWarnings() {
		t.Error("HasWarnings should be true")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(0)
	bag.Add(Diagnostic{
		Severity: SevError, Code: SynExpectEnd,
		Primary: source.Span{Start: 10, End: 12},
	})
	bag.Add(Diagnostic{
		Severity: SevWarning, Code: WarnAmbiguousSlash,
		Primary: source.Span{Start: 2, End: 4},
	})
	bag.Add(Diagnostic{
		Severity: SevError, Code: SynUnexpectedToken,
		Primary: source.Span{Start: 2, End: 4},
	})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != SynUnexpectedToken {
		t.Errorf("item 0 = %v, errors sort before warnings at the same span", items[0].Code)
	}
	if items[1].Code != WarnAmbiguousSlash {
		t.Errorf("item 1 = %v, want the warning", items[1].Code)
	}
	if items[2].Code != SynExpectEnd {
		t.Errorf("item 2 = %v, later spans sort last", items[2].Code)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	r.Report(LexBadEscape, SevError, source.Span{Start: 1, End: 2}, "bad escape", nil)

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != LexBadEscape || d.Message != "bad escape" {
		t.Errorf("stored diagnostic = %+v", d)
	}
	if !d.IsLexical() {
		t.Error("1xxx code should report as lexical")
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := NewBag(0), NewBag(0)
	m := MultiReporter{BagReporter{Bag: a}, BagReporter{Bag: b}}
	m.Report(SynExpectEnd, SevError, source.Span{}, "msg", nil)

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("fanout = %d/%d, want 1/1", a.Len(), b.Len())
	}
}
