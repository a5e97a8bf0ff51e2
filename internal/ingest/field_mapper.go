package ingest

import (
	"fmt"
	"strings"
)

// FieldSpec: Bir kanonik alan için beklenen başlık adayları, öncelik sıralı.
// Kaynak dosyalar aynı kolonu farklı adlarla gönderebiliyor (ör. 物料号 /
// 物料编号 / 物料), bu yüzden eşleme satır satır değil sayfa başına BİR KEZ
// çözülür.
type FieldSpec struct {
	Canonical  string
	Candidates []string
	Required   bool
}

// HeaderIndex: kanonik alan adı -> kolon indeksi
type HeaderIndex map[string]int

// ResolveHeaders: Başlık satırını aday tablosuyla eşler. Zorunlu bir alan
// bulunamazsa hata döner; opsiyonel alanlar indekste yer almaz.
func ResolveHeaders(headerRow []string, specs []FieldSpec) (HeaderIndex, error) {
	cols := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		h = NormalizeHeader(h)
		if h == "" {
			continue
		}
		// Aynı başlık iki kez geçerse ilki kazanır
		if _, ok := cols[h]; !ok {
			cols[h] = i
		}
	}

	idx := make(HeaderIndex, len(specs))
	for _, spec := range specs {
		found := false
		for _, cand := range spec.Candidates {
			if i, ok := cols[NormalizeHeader(cand)]; ok {
				idx[spec.Canonical] = i
				found = true
				break
			}
		}
		if !found && spec.Required {
			return nil, fmt.Errorf("zorunlu kolon bulunamadı: %s (adaylar: %s)",
				spec.Canonical, strings.Join(spec.Candidates, ", "))
		}
	}
	return idx, nil
}

// Cell: Satırdan kanonik alanın hücresini okur; kolon eşlenmemişse veya satır
// kısaysa boş string döner (excelize satır sonundaki boş hücreleri kırpar).
func (idx HeaderIndex) Cell(row []string, canonical string) string {
	i, ok := idx[canonical]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
