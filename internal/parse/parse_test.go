package parse

import (
	"reflect"
	"testing"
)

func TestSalaryRange(t *testing.T) {
	cases := []struct {
		in       string
		wantMin  int
		wantMax  int
		wantNone bool
	}{
		{in: "", wantNone: true},
		{in: "DOE", wantNone: true},
		{in: "€4,000 - €5,000", wantMin: 4000, wantMax: 5000},
		{in: "4k-6k", wantMin: 4000, wantMax: 6000},
		{in: "5000", wantMin: 5000, wantMax: 5000},
		{in: "EUR 3500", wantMin: 3500, wantMax: 3500},
		{in: "$8k", wantMin: 8000, wantMax: 8000},
	}

	for _, c := range cases {
		gotMin, gotMax := SalaryRange(c.in)
		if c.wantNone {
			if gotMin != nil || gotMax != nil {
				t.Fatalf("SalaryRange(%q): expected nil pair, got %v %v", c.in, gotMin, gotMax)
			}
			continue
		}
		if gotMin == nil || gotMax == nil {
			t.Fatalf("SalaryRange(%q): unexpected nil", c.in)
		}
		if *gotMin != c.wantMin || *gotMax != c.wantMax {
			t.Fatalf("SalaryRange(%q) = (%d, %d), want (%d, %d)", c.in, *gotMin, *gotMax, c.wantMin, c.wantMax)
		}
	}
}

func TestContractTypes(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Permanent", []string{"permanent"}},
		{"Perm or Rotational", []string{"permanent", "rotational"}},
		{"Seasonal work", []string{"temporary"}},
		{"Temp", []string{"temporary"}},
		{"day work only", nil},
	}

	for _, c := range cases {
		got := ContractTypes(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("ContractTypes(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCommaList(t *testing.T) {
	got := CommaList(" Mediterranean , Caribbean ,, ")
	want := []string{"Mediterranean", "Caribbean"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CommaList = %v, want %v", got, want)
	}

	if got := CommaList("  "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}
