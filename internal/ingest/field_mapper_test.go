package ingest

import "testing"

func TestResolveHeadersCandidateOrder(t *testing.T) {
	specs := []FieldSpec{
		{Canonical: "dish_code", Candidates: []string{"菜品编码", "菜品代码", "编码"}, Required: true},
		{Canonical: "size", Candidates: []string{"规格", "尺寸"}},
	}

	// İkinci aday eşleşmeli, ilk eşleşen aday kazanmalı
	idx, err := ResolveHeaders([]string{"名称", "菜品代码", "编码", "规格"}, specs)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if idx["dish_code"] != 1 {
		t.Errorf("dish_code kolon 1 beklenirdi, %d geldi", idx["dish_code"])
	}
	if idx["size"] != 3 {
		t.Errorf("size kolon 3 beklenirdi, %d geldi", idx["size"])
	}
}

func TestResolveHeadersMissingRequired(t *testing.T) {
	specs := []FieldSpec{
		{Canonical: "dish_code", Candidates: []string{"菜品编码"}, Required: true},
	}
	if _, err := ResolveHeaders([]string{"名称", "规格"}, specs); err == nil {
		t.Error("zorunlu kolon eksikken hata beklenirdi")
	}
}

func TestResolveHeadersMissingOptional(t *testing.T) {
	specs := []FieldSpec{
		{Canonical: "dish_code", Candidates: []string{"菜品编码"}, Required: true},
		{Canonical: "size", Candidates: []string{"规格"}},
	}
	idx, err := ResolveHeaders([]string{"菜品编码"}, specs)
	if err != nil {
		t.Fatalf("opsiyonel kolon eksikken hata olmamalıydı: %v", err)
	}
	if _, ok := idx["size"]; ok {
		t.Error("eşlenmemiş opsiyonel alan indekste olmamalı")
	}
}

func TestResolveHeadersTrimsAndNormalizes(t *testing.T) {
	specs := []FieldSpec{
		{Canonical: "dish_code", Candidates: []string{"菜品编码"}, Required: true},
	}
	// Başlıkta kenar boşluğu ve tam genişlik boşluk tolere edilir
	idx, err := ResolveHeaders([]string{" 菜品编码　"}, specs)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if idx["dish_code"] != 0 {
		t.Errorf("kolon 0 beklenirdi, %d geldi", idx["dish_code"])
	}
}

func TestHeaderIndexCellShortRow(t *testing.T) {
	idx := HeaderIndex{"size": 5}
	// excelize satır sonundaki boş hücreleri kırpar; kısa satır boş döner
	if got := idx.Cell([]string{"a", "b"}, "size"); got != "" {
		t.Errorf("kısa satırda boş beklenirdi, %q geldi", got)
	}
	if got := idx.Cell([]string{"a"}, "yok"); got != "" {
		t.Errorf("eşlenmemiş alanda boş beklenirdi, %q geldi", got)
	}
}
