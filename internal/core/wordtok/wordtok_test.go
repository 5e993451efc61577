package wordtok

import (
	"reflect"
	"testing"
)

func TestWords_Basic(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"don't stop", []string{"don't", "stop"}},
		{"well-known fact", []string{"well-known", "fact"}},
		{"it’s fine", []string{"it’s", "fine"}},
		{"a_b c2", []string{"a_b", "c2"}},
		{"one,two;three", []string{"one", "two", "three"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"", nil},
		{"...", nil},
		{"café über", []string{"café", "über"}},
	}
	for _, tc := range cases {
		if got := Words(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Words(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestWords_JoinerEdges(t *testing.T) {
	// leading or trailing joiners are separators, not token content
	if got := Words("-dash 'quote"); !reflect.DeepEqual(got, []string{"dash", "quote"}) {
		t.Fatalf("expected [dash quote], got %v", got)
	}
	if got := Words("trail- end'"); !reflect.DeepEqual(got, []string{"trail", "end"}) {
		t.Fatalf("expected [trail end], got %v", got)
	}
	// a double joiner breaks the token
	if got := Words("odd--ball"); !reflect.DeepEqual(got, []string{"odd", "ball"}) {
		t.Fatalf("expected [odd ball], got %v", got)
	}
}

func TestStripMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> move", "bold move"},
		{"<p>one</p><p>two</p>", "onetwo"},
		{"a &amp; b", "a & b"},
		{"<script>x=1</script>ok", "x=1ok"},
	}
	for _, tc := range cases {
		if got := StripMarkup(tc.in); got != tc.want {
			t.Fatalf("StripMarkup(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count("<i>three</i> little words"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First. Second; third! And... fourth?")
	want := []string{"First", " Second", " third", " And", " fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := Sentences("!!!"); len(got) != 0 {
		t.Fatalf("expected no segments, got %v", got)
	}
}

func TestDistinctFold(t *testing.T) {
	if got := DistinctFold([]string{"Go", "go", "GO", "gopher"}); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := DistinctFold(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
