package rawheader

import (
	"strings"
	"testing"
)

func FuzzAssembleRawHeaders(f *testing.F) {
	f.Add("HTTP/1.1 200 OK\r\nFoo: bar\r\n baz\r\n\r\n")
	f.Add("junk\nHTTP/1.0 404 Not Found\nX: y\n\n")
	f.Add("no status line at all")
	f.Add("HTTP/1.1 200 OK\r\nEmbedded: nu\x00l\r\n\r\n")

	f.Fuzz(func(t *testing.T, in string) {
		out := AssembleRawHeaders([]byte(in))
		if !strings.HasSuffix(out, "\x00\x00") {
			t.Errorf("output %q does not end with a double NUL", out)
		}
		if strings.ContainsAny(out, "\r\n") {
			t.Errorf("output %q contains a raw CR or LF", out)
		}
	})
}

func FuzzUnquote(f *testing.F) {
	f.Add(`"hello"`)
	f.Add(`"esc\"aped"`)
	f.Add(`'single'`)
	f.Add(`"dangling`)
	f.Add("bare")

	f.Fuzz(func(t *testing.T, in string) {
		out := Unquote(in)
		strict, ok := StrictUnquote(in)
		if ok && strict != out {
			t.Errorf("StrictUnquote(%q) = %q but Unquote = %q", in, strict, out)
		}
	})
}

func FuzzNameValuePairs(f *testing.F) {
	f.Add("alpha=1; beta=2", byte(';'))
	f.Add(`a="quoted; value", b=plain`, byte(','))
	f.Add("=\x00;\"", byte(';'))

	f.Fuzz(func(t *testing.T, in string, delimiter byte) {
		it := NewNameValuePairsIterator(in, delimiter,
			ValuesNotRequired, QuotesNotStrict)
		for it.Next() {
			if it.Name() == "" && !strings.Contains(in, "=") {
				t.Errorf("empty pair name without an equals sign in %q", in)
			}
		}
	})
}
