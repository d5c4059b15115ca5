package huffman

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	ft, err := CountFrequencies(SymbolsFromString("abracadabra"))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 5\n",
		"\tTotal() = 11\n",
		"\tCount('a') = 5\n",
		"\tCount('b') = 2\n",
		"\tCount('r') = 2\n",
		"\tCount('c') = 1\n",
		"\tCount('d') = 1\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if count := ft.Count('z'); count != 0 {
		t.Errorf("expected count 0 for absent symbol, got %d", count)
	}
}

func TestCountFrequencies_InvalidSymbol(t *testing.T) {
	_, err := CountFrequencies([]Symbol{'a', InvalidSymbol})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
}

func TestFrequencyTable_MostFrequent(t *testing.T) {
	ft, err := CountFrequencies(SymbolsFromString("abracadabra"))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	type testRow struct {
		n      int
		expect string
	}

	testData := [...]testRow{
		{n: 0, expect: ""},
		{n: 1, expect: "a5"},
		{n: 3, expect: "a5 b2 r2"},
		{n: 10, expect: "a5 b2 r2 c1 d1"},
		{n: -1, expect: "a5 b2 r2 c1 d1"},
	}
	for _, row := range testData {
		var parts []string
		for _, entry := range ft.MostFrequent(row.n) {
			parts = append(parts, string(rune(entry.Symbol))+strconv.FormatUint(entry.Count, 10))
		}
		if actual := strings.Join(parts, " "); row.expect != actual {
			t.Errorf("MostFrequent(%d):\n\texpect: %s\n\tactual: %s", row.n, row.expect, actual)
		}
	}
}

func TestMakeFrequencyTable_Errors(t *testing.T) {
	type testRow struct {
		name    string
		entries []SymbolCount
		expect  error
	}

	testData := [...]testRow{
		{"empty", nil, ErrEmptyInput},
		{"zero", []SymbolCount{{'a', 1}, {'b', 0}}, ErrZeroCount},
		{"duplicate", []SymbolCount{{'a', 1}, {'a', 2}}, ErrDuplicateSymbol},
		{"negative", []SymbolCount{{-5, 1}}, ErrInvalidSymbol},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := MakeFrequencyTable(row.entries...)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}
}
