package ingest

import (
	"strconv"
	"strings"
)

// NormalizeHeader: Başlık karşılaştırması için normalize eder (boşluklar ve
// tam genişlik karakterler).
func NormalizeHeader(s string) string {
	return strings.TrimSpace(normalizeWidth(s))
}

// NormalizeCode: Ürün/malzeme kodlarını normalize eder. Kaynak dosyalarda
// kodlar bazen tam genişlik rakamlarla (１４１２０００１) veya sayı olarak
// (14120001.0) geliyor.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(normalizeWidth(s))
	s = strings.TrimSuffix(s, ".0")
	return s
}

// NormalizeName: İsimlerdeki tam genişlik boşlukları ve kenar boşluklarını
// temizler.
func NormalizeName(s string) string {
	s = strings.ReplaceAll(s, "　", " ")
	return strings.TrimSpace(s)
}

// SplitSizeSuffix: "菜名(大)" / "菜名（小）" biçimindeki boy ekini isimden
// ayırır. Boy eki yoksa size boş döner.
func SplitSizeSuffix(name string) (base, size string) {
	name = NormalizeName(name)
	for _, pair := range [][2]string{{"(", ")"}, {"（", "）"}} {
		open, close := pair[0], pair[1]
		if !strings.HasSuffix(name, close) {
			continue
		}
		i := strings.LastIndex(name, open)
		if i <= 0 {
			continue
		}
		inner := strings.TrimSuffix(name[i+len(open):], close)
		switch inner {
		case "大", "中", "小", "例":
			return strings.TrimSpace(name[:i]), inner
		}
	}
	return name, ""
}

// ParseNumber: Hücre değerini sayıya çevirir. Boş hücre 0 sayılır; binlik
// ayracı ve tam genişlik rakamlar tolere edilir.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(normalizeWidth(s))
	if s == "" || s == "-" {
		return 0, true
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// normalizeWidth: Tam genişlik ASCII karakterlerini (ＦＦ０１-ＦＦ５Ｅ aralığı)
// yarım genişliğe indirir.
func normalizeWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '　':
			b.WriteRune(' ')
		case r >= 0xFF01 && r <= 0xFF5E:
			b.WriteRune(r - 0xFEE0)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
