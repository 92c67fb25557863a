package label

import "testing"

func TestSetIntAndInt(t *testing.T) {
	tbl := New()
	if _, ok := tbl.Int(10); ok {
		t.Fatal("Int(10) on empty table reported found")
	}
	tbl.SetInt(10, 3)
	line, ok := tbl.Int(10)
	if !ok || line != 3 {
		t.Errorf("Int(10) = (%d, %v), want (3, true)", line, ok)
	}
}

func TestSetIdentAndIdent(t *testing.T) {
	tbl := New()
	tbl.SetIdent("loop", 5)
	line, ok := tbl.Ident("loop")
	if !ok || line != 5 {
		t.Errorf("Ident(loop) = (%d, %v), want (5, true)", line, ok)
	}
	if _, ok := tbl.Ident("missing"); ok {
		t.Error("Ident(missing) reported found")
	}
}

func TestSetOverwritesLastWins(t *testing.T) {
	tbl := New()
	tbl.SetInt(10, 1)
	tbl.SetInt(10, 7)
	line, _ := tbl.Int(10)
	if line != 7 {
		t.Errorf("Int(10) = %d, want 7 (last Set wins)", line)
	}
}

func TestReset(t *testing.T) {
	tbl := New()
	tbl.SetInt(10, 1)
	tbl.SetIdent("loop", 2)
	tbl.Reset()
	if _, ok := tbl.Int(10); ok {
		t.Error("Int(10) found after Reset")
	}
	if _, ok := tbl.Ident("loop"); ok {
		t.Error("Ident(loop) found after Reset")
	}
	if len(tbl.Entries()) != 0 {
		t.Error("Entries() non-empty after Reset")
	}
}

func TestEntries(t *testing.T) {
	tbl := New()
	tbl.SetInt(10, 1)
	tbl.SetIdent("loop", 2)
	entries := tbl.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d entries, want 2", len(entries))
	}
	found := map[string]int{}
	for _, e := range entries {
		found[e.Name] = e.Line
	}
	if found["10"] != 1 {
		t.Errorf("Entries() missing int label 10 -> 1, got %v", found)
	}
	if found["loop"] != 2 {
		t.Errorf("Entries() missing ident label loop -> 2, got %v", found)
	}
}
