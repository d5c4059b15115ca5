package huffman

import (
	"testing"
)

func TestParseCode(t *testing.T) {
	type testRow struct {
		input  string
		size   byte
		bits   uint64
		string string
	}

	testData := [...]testRow{
		{input: "", size: 0, bits: 0x00, string: "\"\""},
		{input: "0", size: 1, bits: 0x00, string: "\"0\""},
		{input: "1", size: 1, bits: 0x01, string: "\"1\""},
		{input: "10", size: 2, bits: 0x02, string: "\"10\""},
		{input: "0011", size: 4, bits: 0x03, string: "\"0011\""},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if hc != MakeCode(row.size, row.bits) {
				t.Errorf("expected %d/%#x, got %d/%#x", row.size, row.bits, hc.Size, hc.Bits)
			}
			if actual := hc.String(); row.string != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.string, actual)
			}
		})
	}

	if _, err := ParseCode("012"); err == nil {
		t.Errorf("expected error for non-bit character")
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"0110", "", true},
		{"0110", "0", true},
		{"0110", "011", true},
		{"0110", "0110", true},
		{"0110", "1", false},
		{"0110", "010", false},
		{"01", "0110", false},
	}
	for _, row := range testData {
		hc, _ := ParseCode(row.code)
		prefix, _ := ParseCode(row.prefix)
		if actual := hc.HasPrefix(prefix); row.expect != actual {
			t.Errorf("%s.HasPrefix(%s): expected %t, got %t", hc, prefix, row.expect, actual)
		}
	}
}

func TestCodeTable_IsPrefixFree(t *testing.T) {
	makeTable := func(codes ...string) CodeTable {
		ct := CodeTable{codes: make(map[Symbol]Code)}
		for i, str := range codes {
			hc, err := ParseCode(str)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			ct.add(Symbol('a'+i), hc)
		}
		return ct
	}

	if !makeTable("0", "10", "11").IsPrefixFree() {
		t.Errorf("expected {0, 10, 11} to be prefix-free")
	}
	if makeTable("0", "01", "11").IsPrefixFree() {
		t.Errorf("expected {0, 01, 11} not to be prefix-free")
	}
	if makeTable("10", "0", "1011").IsPrefixFree() {
		t.Errorf("expected {10, 0, 1011} not to be prefix-free")
	}
	if makeTable("1", "1").IsPrefixFree() {
		t.Errorf("expected duplicate codes not to be prefix-free")
	}
}

func TestMinFixedWidth(t *testing.T) {
	expect := map[int]uint{0: 1, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 256: 8, 257: 9}
	for n, width := range expect {
		if actual := MinFixedWidth(n); width != actual {
			t.Errorf("MinFixedWidth(%d): expected %d, got %d", n, width, actual)
		}
	}
}

func TestSymbol_String(t *testing.T) {
	expect := map[Symbol]string{
		'a':           "'a'",
		'\n':          "'\\n'",
		'é':           "'é'",
		InvalidSymbol: "<invalid>",
		0x110000:      "1114112",
	}
	for symbol, str := range expect {
		if actual := symbol.String(); str != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", str, actual)
		}
	}
}
