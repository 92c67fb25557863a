package executor

import (
	"strings"
	"testing"

	"github.com/macosten/swiftbasic-core/internal/basicerr"
)

// fakeDelegate records every HandlePrint line and serves canned INPUT
// answers in order, for use by table-driven scenario tests below.
type fakeDelegate struct {
	printed []string
	input   []string
	cleared int
	listed  []ListEntry
}

func (f *fakeDelegate) HandlePrint(line string) { f.printed = append(f.printed, line) }
func (f *fakeDelegate) HandleInput() string {
	if len(f.input) == 0 {
		return ""
	}
	v := f.input[0]
	f.input = f.input[1:]
	return v
}
func (f *fakeDelegate) HandleClear()            { f.cleared++ }
func (f *fakeDelegate) HandleList(e []ListEntry) { f.listed = e }

func run(t *testing.T, source string, d *fakeDelegate) error {
	t.Helper()
	exec := New(d)
	if err := exec.LoadCode(source); err != nil {
		t.Fatalf("LoadCode: %v", err)
	}
	return exec.Run()
}

func TestScenarioPrintLiteral(t *testing.T) {
	d := &fakeDelegate{}
	if err := run(t, "PRINT \"hello\"\n", d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "hello\n" {
		t.Errorf("printed = %v, want [\"hello\\n\"]", d.printed)
	}
}

func TestScenarioAssignmentAndArithmetic(t *testing.T) {
	d := &fakeDelegate{}
	src := "x = 2\ny = 3\nPRINT x + y * 2\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "8\n" {
		t.Errorf("printed = %v, want [\"8\\n\"]", d.printed)
	}
}

func TestScenarioGoto(t *testing.T) {
	d := &fakeDelegate{}
	src := "GOTO skip\nPRINT \"unreachable\"\nskip\nPRINT \"reached\"\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "reached\n" {
		t.Errorf("printed = %v, want [\"reached\\n\"]", d.printed)
	}
}

func TestScenarioGosubReturn(t *testing.T) {
	d := &fakeDelegate{}
	src := "GOSUB sub\nPRINT \"after\"\nEND\nsub\nPRINT \"in sub\"\nRETURN\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"in sub\n", "after\n"}
	if len(d.printed) != 2 || d.printed[0] != want[0] || d.printed[1] != want[1] {
		t.Errorf("printed = %v, want %v", d.printed, want)
	}
}

func TestScenarioForNext(t *testing.T) {
	d := &fakeDelegate{}
	src := "FOR i IN 0 TO 3\nPRINT i\nNEXT\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"0\n", "1\n", "2\n"}
	if len(d.printed) != len(want) {
		t.Fatalf("printed = %v, want %v", d.printed, want)
	}
	for i := range want {
		if d.printed[i] != want[i] {
			t.Errorf("printed[%d] = %q, want %q", i, d.printed[i], want[i])
		}
	}
}

func TestScenarioDictLiteralAndSubscript(t *testing.T) {
	d := &fakeDelegate{}
	src := "d = [\"a\": 1, \"b\": 2]\nPRINT d[\"b\"]\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "2\n" {
		t.Errorf("printed = %v, want [\"2\\n\"]", d.printed)
	}
}

func TestScenarioStringSubscript(t *testing.T) {
	d := &fakeDelegate{}
	src := "s = \"hello\"\nPRINT s[1]\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "e\n" {
		t.Errorf("printed = %v, want [\"e\\n\"]", d.printed)
	}
}

func TestScenarioInput(t *testing.T) {
	d := &fakeDelegate{input: []string{"42"}}
	src := "INPUT x\nPRINT x + 1\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "43\n" {
		t.Errorf("printed = %v, want [\"43\\n\"]", d.printed)
	}
}

func TestScenarioIfThen(t *testing.T) {
	d := &fakeDelegate{}
	src := "x = 5\nIF x > 3 THEN PRINT \"big\"\nIF x > 10 THEN PRINT \"huge\"\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "big\n" {
		t.Errorf("printed = %v, want [\"big\\n\"]", d.printed)
	}
}

func TestScenarioEndStopsEarly(t *testing.T) {
	d := &fakeDelegate{}
	src := "PRINT \"a\"\nEND\nPRINT \"b\"\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "a\n" {
		t.Errorf("printed = %v, want [\"a\\n\"]", d.printed)
	}
}

func TestScenarioClearAndList(t *testing.T) {
	d := &fakeDelegate{}
	src := "x = 1\nLIST\nCLEAR\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.cleared != 1 {
		t.Errorf("cleared = %d, want 1", d.cleared)
	}
	if len(d.listed) != 1 || d.listed[0].Name != "x" || d.listed[0].Display != "1" {
		t.Errorf("listed = %v, want [{x 1}]", d.listed)
	}
}

func TestErrorTaxonomyUninitializedSymbol(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "PRINT x\n", d)
	assertKind(t, err, basicerr.UninitializedSymbol)
}

func TestErrorTaxonomyUnknownLabel(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "GOTO nowhere\n", d)
	assertKind(t, err, basicerr.UnknownLabel)
}

func TestErrorTaxonomyIntegerOverflow(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "x = 9223372036854775807\nx = x + 1\n", d)
	assertKind(t, err, basicerr.IntegerOverflow)
}

func TestErrorTaxonomyCannotReturn(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "RETURN\n", d)
	assertKind(t, err, basicerr.CannotReturn)
}

func TestErrorTaxonomyCannotIterate(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "NEXT\n", d)
	assertKind(t, err, basicerr.CannotIterate)
}

func TestErrorTaxonomyBadRangeBound(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "FOR i IN 5 TO 1\nPRINT i\nNEXT\n", d)
	assertKind(t, err, basicerr.BadRangeBound)
}

func TestErrorTaxonomyCannotSubscript(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "x = 1\nPRINT x[0]\n", d)
	assertKind(t, err, basicerr.CannotSubscript)
}

func TestErrorTaxonomyBadComparison(t *testing.T) {
	d := &fakeDelegate{}
	err := run(t, "d1 = [1]\nd2 = [2]\nIF d1 < d2 THEN PRINT \"x\"\n", d)
	assertKind(t, err, basicerr.BadComparison)
}

func TestErrorTaxonomyDelegateNotSet(t *testing.T) {
	exec := New(nil)
	if err := exec.LoadCode("PRINT \"x\"\n"); err != nil {
		t.Fatalf("LoadCode: %v", err)
	}
	err := exec.Run()
	assertKind(t, err, basicerr.DelegateNotSet)
}

func assertKind(t *testing.T, err error, want basicerr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("Run() = nil error, want kind %s", want)
	}
	be, ok := err.(*basicerr.Error)
	if !ok {
		t.Fatalf("Run() error type = %T, want *basicerr.Error", err)
	}
	if be.Kind != want {
		t.Errorf("Run() error kind = %s, want %s", be.Kind, want)
	}
}

func TestEndProgramBeforeRunEndsImmediately(t *testing.T) {
	d := &fakeDelegate{}
	exec := New(d)
	src := "FOR i IN 0 TO 1000000\nNEXT\n"
	if err := exec.LoadCode(src); err != nil {
		t.Fatalf("LoadCode: %v", err)
	}
	exec.EndProgram()
	if err := exec.Run(); err != nil {
		t.Fatalf("Run() after EndProgram = %v, want nil", err)
	}
	if exec.Running() {
		t.Error("Running() = true after Run returned")
	}
}

func TestLoadCodeResetsState(t *testing.T) {
	d := &fakeDelegate{}
	exec := New(d)
	if err := exec.LoadCode("x = 1\n"); err != nil {
		t.Fatalf("LoadCode: %v", err)
	}
	if err := exec.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !exec.Symbols().Has("x") {
		t.Fatal("x not set after first run")
	}
	if err := exec.LoadCode("PRINT \"y\"\n"); err != nil {
		t.Fatalf("second LoadCode: %v", err)
	}
	if exec.Symbols().Has("x") {
		t.Error("x still present after LoadCode reset symbol table")
	}
}

func TestBlankLinesPreserved(t *testing.T) {
	d := &fakeDelegate{}
	src := "x = 1\n\nPRINT x\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "1\n" {
		t.Errorf("printed = %v, want [\"1\\n\"]", d.printed)
	}
}

func TestPrintCommaConcatenatesNoSeparator(t *testing.T) {
	d := &fakeDelegate{}
	src := "PRINT \"a\", \"b\"\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.printed) != 1 || d.printed[0] != "ab\n" {
		t.Errorf("printed = %v, want [\"ab\\n\"]", d.printed)
	}
}

func TestNestedForLoops(t *testing.T) {
	d := &fakeDelegate{}
	src := "FOR i IN 0 TO 2\nFOR j IN 0 TO 2\nPRINT i\nNEXT\nNEXT\n"
	if err := run(t, src, d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "0\n0\n1\n1\n"
	got := strings.Join(d.printed, "")
	if got != want {
		t.Errorf("printed joined = %q, want %q", got, want)
	}
}
