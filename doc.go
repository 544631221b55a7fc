/*
Package rawheader parses raw HTTP/1.x header blocks at the syntax level.

The package turns a possibly malformed byte stream into a canonical
NUL-delimited header block (AssembleRawHeaders), iterates over its lines
(HeadersIterator) and over comma- or semicolon-delimited values and
name=value parameter lists within a single field value (ValuesIterator,
NameValuePairsIterator), and parses a handful of specific field values:
Content-Type, Range, Content-Range, Accept-Encoding, Content-Encoding,
Retry-After and Accept-Language lists. It also classifies header names and
methods for request-policy purposes (IsSafeHeader, IsNonCoalescingHeader,
IsMethodSafe).

Parsing never panics on malformed input: parse functions report success with
a boolean, and several of them are deliberately lenient (Unquote falls back
to returning its input unchanged; the name=value iterator recovers from a
missing close quote) so that headers emitted by non-conformant senders are
still usable. Do not assume that strings returned by this package conform to
the grammar of the protocol.

Everything here is a pure function of its input. Iterators return substrings
of the text they were constructed over; nothing is retained between calls,
and no function performs I/O.
*/
package rawheader
