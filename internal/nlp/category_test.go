package nlp

import "testing"

func TestCategorize(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"Almoço no shopping", "Alimentação"},
		{"uber para o trabalho", "Transporte"},
		{"consulta no dentista", "Saúde"},
		{"ingresso de cinema", "Lazer"},
		{"aluguel de março", "Moradia"},
		{"mensalidade da faculdade", "Educação"},
		{"ração do cachorro", "Pets"},
		{"compras no supermercado", "Mercado"},
		{"coisas aleatórias", "Outros"},
		{"", "Outros"},
	}
	for _, tc := range cases {
		if got := Categorize(tc.desc); got != tc.want {
			t.Fatalf("%q expected %q, got %q", tc.desc, tc.want, got)
		}
	}
}

func TestCategorizeIgnoresAccentsAndCase(t *testing.T) {
	if got := Categorize("CAFÉ da manhã"); got != "Alimentação" {
		t.Fatalf("expected Alimentação, got %q", got)
	}
}
