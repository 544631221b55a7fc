package rawheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersIterator(t *testing.T) {
	it := NewHeadersIterator("foo: 1\x00bar: hello world\x00baz: 3\x00\x00", 0)

	require.True(t, it.Next())
	assert.Equal(t, "foo", it.Name())
	assert.Equal(t, "1", it.Value())

	require.True(t, it.Next())
	assert.Equal(t, "bar", it.Name())
	assert.Equal(t, "hello world", it.Value())

	require.True(t, it.Next())
	assert.Equal(t, "baz", it.Name())
	assert.Equal(t, "3", it.Value())

	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestHeadersIteratorSkipsMalformed(t *testing.T) {
	it := NewHeadersIterator("Name: Value\x00Bad Line\x00Good: X\x00\x00", 0)

	require.True(t, it.Next())
	assert.Equal(t, "Name", it.Name())
	assert.Equal(t, "Value", it.Value())

	require.True(t, it.Next())
	assert.Equal(t, "Good", it.Name())
	assert.Equal(t, "X", it.Value())

	assert.False(t, it.Next())
}

func TestHeadersIteratorMalformedLines(t *testing.T) {
	// No colon, empty name, leading-LWS name (a stray continuation), and a
	// non-token name are all skipped; a malformed value is not.
	block := "no colon here\x00" +
		": empty name\x00" +
		"  lws: continuation lookalike\x00" +
		"bad name: spaces in name\x00" +
		"ok: bad\x7fvalue\x00" +
		"\x00"
	it := NewHeadersIterator(block, 0)

	require.True(t, it.Next())
	assert.Equal(t, "ok", it.Name())
	assert.Equal(t, "bad\x7fvalue", it.Value())

	assert.False(t, it.Next())
}

func TestHeadersIteratorEmptyValue(t *testing.T) {
	it := NewHeadersIterator("a:\x00b:   \x00\x00", 0)

	require.True(t, it.Next())
	assert.Equal(t, "a", it.Name())
	assert.Equal(t, "", it.Value())

	require.True(t, it.Next())
	assert.Equal(t, "b", it.Name())
	assert.Equal(t, "", it.Value())

	assert.False(t, it.Next())
}

func TestHeadersIteratorAdvanceTo(t *testing.T) {
	it := NewHeadersIterator("foo: 1\x00Bar: 2\x00foo: 3\x00\x00", 0)

	require.True(t, it.AdvanceTo("bar"))
	assert.Equal(t, "Bar", it.Name())
	assert.Equal(t, "2", it.Value())

	require.True(t, it.AdvanceTo("foo"))
	assert.Equal(t, "3", it.Value())

	assert.False(t, it.AdvanceTo("foo"))
}

func TestHeadersIteratorAdvanceToRequiresLowerCase(t *testing.T) {
	it := NewHeadersIterator("foo: 1\x00\x00", 0)
	assert.Panics(t, func() { it.AdvanceTo("Foo") })
}

func TestValuesIterator(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		delimiter   byte
		ignoreEmpty bool
		want        []string
	}{
		{"comma list", "a, b, c", ',', true, []string{"a", "b", "c"}},
		{"empty input", "", ',', true, nil},
		{"all lws", "  \t ", ',', true, nil},
		{"skip empties", ", a, , b,", ',', true, []string{"a", "b"}},
		{"keep empties", ",a, ,b", ',', false, []string{"", "a", "", "b"}},
		{"quoted delimiter inert", `a, "b, c", d`, ',', true,
			[]string{"a", `"b, c"`, "d"}},
		{"semicolon", "x=1; y=2", ';', true, []string{"x=1", "y=2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewValuesIterator(tt.in, tt.delimiter, tt.ignoreEmpty)
			var got []string
			for it.Next() {
				got = append(got, it.Value())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

type pair struct {
	name, value string
}

func collectPairs(it *NameValuePairsIterator) []pair {
	var pairs []pair
	for it.Next() {
		pairs = append(pairs, pair{it.Name(), it.Value()})
	}
	return pairs
}

func TestNameValuePairsIterator(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  []pair
		valid bool
	}{
		{"basic", "alpha=1; beta=2; gamma=3",
			[]pair{{"alpha", "1"}, {"beta", "2"}, {"gamma", "3"}}, true},
		{"spaces around equals", "a = 1; b =2",
			[]pair{{"a", "1"}, {"b", "2"}}, true},
		{"quoted value", `name="value"`,
			[]pair{{"name", "value"}}, true},
		{"quoted pair", `name="va\"lue"`,
			[]pair{{"name", `va"lue`}}, true},
		{"quoted delimiter", `a="x;y"; b=1`,
			[]pair{{"a", "x;y"}, {"b", "1"}}, true},
		{"empty input", "", nil, true},
		{"missing close quote", `name="value`,
			[]pair{{"name", "value"}}, true},
		{"no equals fails", "alpha=1; bogus; c=3",
			[]pair{{"alpha", "1"}}, false},
		{"leading equals fails", "=1", nil, false},
		{"empty value fails", "a=", nil, false},
		{"blank value fails", "a=   ", nil, false},
		{"quote before equals fails", `a"b=c`, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewNameValuePairsIterator(tt.in, ';', ValuesRequired, QuotesNotStrict)
			assert.Equal(t, tt.want, collectPairs(it))
			assert.Equal(t, tt.valid, it.Valid())
			// Invalidity is permanent.
			assert.False(t, it.Next())
			assert.Equal(t, tt.valid, it.Valid())
		})
	}
}

func TestNameValuePairsIteratorOptionalValues(t *testing.T) {
	it := NewNameValuePairsIterator("token; a=1; bare", ';', ValuesNotRequired, QuotesNotStrict)
	assert.Equal(t,
		[]pair{{"token", ""}, {"a", "1"}, {"bare", ""}},
		collectPairs(it))
	assert.True(t, it.Valid())

	// name= is still malformed even when values are optional.
	it = NewNameValuePairsIterator("a=", ';', ValuesNotRequired, QuotesNotStrict)
	assert.False(t, it.Next())
	assert.False(t, it.Valid())
}

func TestNameValuePairsIteratorQuoteDetails(t *testing.T) {
	it := NewNameValuePairsIterator(`a="quoted"; b=plain`, ';', ValuesRequired, QuotesNotStrict)

	require.True(t, it.Next())
	assert.True(t, it.ValueIsQuoted())
	assert.Equal(t, "quoted", it.Value())
	assert.Equal(t, `"quoted"`, it.RawValue())

	require.True(t, it.Next())
	assert.False(t, it.ValueIsQuoted())
	assert.Equal(t, "plain", it.Value())
	assert.Equal(t, "plain", it.RawValue())
}

func TestNameValuePairsIteratorMismatchedQuoteFallback(t *testing.T) {
	// With a missing close quote, the leading quote becomes content and
	// quoted-pairs are left unresolved. Historical leniency, kept as is.
	it := NewNameValuePairsIterator(`name="va\"lue`, ';', ValuesRequired, QuotesNotStrict)
	require.True(t, it.Next())
	assert.False(t, it.ValueIsQuoted())
	assert.Equal(t, `va\"lue`, it.Value())

	// A single quote mark as the whole value recovers to empty... except
	// that an empty value is malformed, so the parse fails.
	it = NewNameValuePairsIterator(`name="x`, ';', ValuesRequired, QuotesNotStrict)
	require.True(t, it.Next())
	assert.Equal(t, "x", it.Value())
}

func TestNameValuePairsIteratorStrictQuotes(t *testing.T) {
	it := NewNameValuePairsIterator(`a="good"; b="bad`, ';', ValuesRequired, QuotesStrict)

	require.True(t, it.Next())
	assert.Equal(t, "good", it.Value())
	assert.True(t, it.ValueIsQuoted())

	assert.False(t, it.Next())
	assert.False(t, it.Valid())

	// Unescaped interior quote is rejected too.
	it = NewNameValuePairsIterator(`a="in"terior"`, ';', ValuesRequired, QuotesStrict)
	assert.False(t, it.Next())
	assert.False(t, it.Valid())
}
