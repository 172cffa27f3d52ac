package ortograf

import "testing"

func TestCheckTextTokenizesAndChecks(t *testing.T) {
	c := newTestChecker(t)

	got := c.CheckText("El perro kome en casa.")
	words := []string{"El", "perro", "kome", "en", "casa"}
	if len(got) != len(words) {
		t.Fatalf("CheckText returned %d tokens, want %d", len(got), len(words))
	}
	for i, w := range words {
		if got[i].Token != w {
			t.Errorf("token[%d] = %q, want %q", i, got[i].Token, w)
		}
	}

	// "kome" is misspelled and carries suggestions; "El" and "en" are
	// unknown in this tiny dictionary, which is fine for the shape test.
	var kome *TokenResult
	for i := range got {
		if got[i].Token == "kome" {
			kome = &got[i]
		}
	}
	if kome == nil {
		t.Fatal("kome token missing")
	}
	if kome.Correct {
		t.Error("kome marked correct")
	}
	if len(kome.Suggestions) == 0 || kome.Suggestions[0].Word != "comer" {
		t.Errorf("kome suggestions = %v, want comer first", kome.Suggestions)
	}
}

func TestCheckTextOffsets(t *testing.T) {
	c := newTestChecker(t)

	text := "casa, perro"
	got := c.CheckText(text)
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
	if got[0].Offset != 0 {
		t.Errorf("casa offset = %d, want 0", got[0].Offset)
	}
	if got[1].Offset != 6 {
		t.Errorf("perro offset = %d, want 6", got[1].Offset)
	}
}

func TestCheckTextCorrectTokensHaveNoSuggestions(t *testing.T) {
	c := newTestChecker(t)

	for _, res := range c.CheckText("casa perro cantamos") {
		if !res.Correct {
			t.Errorf("token %q marked incorrect", res.Token)
		}
		if len(res.Suggestions) != 0 {
			t.Errorf("token %q carries suggestions %v", res.Token, res.Suggestions)
		}
	}
}

func TestCheckTextEmpty(t *testing.T) {
	c := newTestChecker(t)
	if got := c.CheckText("  ... 123 ---  "); len(got) != 0 {
		t.Errorf("CheckText on wordless input = %v, want empty", got)
	}
}

func TestMisspellings(t *testing.T) {
	c := newTestChecker(t)

	got := c.Misspellings("perro kasa casa komer")
	if len(got) != 2 {
		t.Fatalf("Misspellings = %v, want kasa and komer", got)
	}
	if got[0].Token != "kasa" || got[1].Token != "komer" {
		t.Errorf("Misspellings tokens = %q, %q; want kasa, komer", got[0].Token, got[1].Token)
	}
}

func TestWordTokenKeepsElisionAndAbbreviation(t *testing.T) {
	if got := reWord.FindString("l'home"); got != "l'home" {
		t.Errorf("reWord on l'home = %q", got)
	}
	if got := reWord.FindString("n.º"); got != "n.º" {
		t.Errorf("reWord on n.º = %q", got)
	}
}
