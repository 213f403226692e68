package util

import "testing"

func TestNormalize(t *testing.T) {
	if Normalize("Tampa Preta Á") != Normalize("TAMPA PRETA A ") {
		t.Fatalf("case/diacritic forms should normalize identically")
	}

	cases := []struct {
		input string
		want  string
	}{
		{input: "Flex Biometria A11 Vermelho", want: "flex biometria a11 vermelho"},
		{input: "  COTAÇÃO  ", want: "cotacao"},
		{input: "", want: ""},
		{input: "   ", want: ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("flex a11 de J7 ")
	if len(tokens) != 2 || tokens[0] != "flex" || tokens[1] != "a11" {
		t.Fatalf("got %v", tokens)
	}

	if got := Tokenize("a b de"); len(got) != 0 {
		t.Fatalf("short tokens should be dropped, got %v", got)
	}

	// repeated tokens are not deduplicated
	if got := Tokenize("flex flex"); len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}
