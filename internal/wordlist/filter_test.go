package wordlist

import "testing"

func TestFilterTypeable(t *testing.T) {
	filter := FilterTypeable()
	for _, word := range []string{"hello", "well-being", "résumé"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass typeable filter", word)
		}
	}
	for _, word := range []string{"", "   ", " padded", "tab\tbed", "line\nbreak"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
