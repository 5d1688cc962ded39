package render

import "testing"

func TestSanitizeUserTextStripsMarkup(t *testing.T) {
	cases := map[string]string{
		"hello":                        "hello",
		"  padded  ":                   "padded",
		"<b>bold</b> move":             "bold move",
		"<script>alert(1)</script>hi":  "hi",
		"<img src=x onerror=alert(1)>": "",
		"":                             "",
	}
	for in, want := range cases {
		if got := SanitizeUserText(in); got != want {
			t.Fatalf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}
