package ingest

import "testing"

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{" 14120001 ", "14120001"},
		{"14120001.0", "14120001"},  // Excel sayı hücresinden gelen kod
		{"１４１２０００１", "14120001"}, // tam genişlik rakamlar
		{"ＡＢ０１", "AB01"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeCode(c.in); got != c.want {
			t.Errorf("NormalizeCode(%q) = %q, %q beklenirdi", c.in, got, c.want)
		}
	}
}

func TestSplitSizeSuffix(t *testing.T) {
	cases := []struct {
		in, base, size string
	}{
		{"毛肚(大)", "毛肚", "大"},
		{"毛肚（小）", "毛肚", "小"},
		{"鸳鸯锅底", "鸳鸯锅底", ""},
		{"虾滑(例)", "虾滑", "例"},
		{"(大)", "(大)", ""},       // tek başına boy eki isim sayılır
		{"套餐(特价)", "套餐(特价)", ""}, // bilinmeyen parantez içeriği boy değildir
	}
	for _, c := range cases {
		base, size := SplitSizeSuffix(c.in)
		if base != c.base || size != c.size {
			t.Errorf("SplitSizeSuffix(%q) = (%q, %q), (%q, %q) beklenirdi",
				c.in, base, size, c.base, c.size)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"1,234.56", 1234.56, true},
		{"", 0, true},  // boş hücre sıfır sayılır
		{"-", 0, true}, // tire de boş demek
		{"１２", 12, true},
		{"%10", 0, false},
		{"abc", 0, false},
		{"-3.2", -3.2, true},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ParseNumber(%q) = (%v, %v), (%v, %v) beklenirdi",
				c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestIsCostUseType(t *testing.T) {
	for _, s := range []string{"", "成本", "成本类", "cost"} {
		if !isCostUseType(s) {
			t.Errorf("%q maliyet tipi sayılmalıydı", s)
		}
	}
	for _, s := range []string{"低值易耗", "包装", "other"} {
		if isCostUseType(s) {
			t.Errorf("%q maliyet tipi sayılmamalıydı", s)
		}
	}
}
