package utils

import "testing"

func TestSanitizeJSON(t *testing.T) {
	fenced := "```json\n{\"text\":\"Hallo\"}\n```"
	if got := SanitizeJSON(fenced); got != `{"text":"Hallo"}` {
		t.Errorf("fenced JSON not cleaned: %q", got)
	}

	plain := `{"text":"Hallo"}`
	if got := SanitizeJSON(plain); got != plain {
		t.Errorf("plain JSON should pass through unchanged: %q", got)
	}

	bare := "```\n{}\n```"
	if got := SanitizeJSON(bare); got != "{}" {
		t.Errorf("bare fence not cleaned: %q", got)
	}
}
