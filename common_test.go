package rawheader

import "math/rand"

const (
	loalpha = "abcdefghijklmnopqrstuvwxyz"
	hialpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnum   = loalpha + hialpha + "0123456789"
	tchars  = "!#$%&'*+-.^_`|~" + alnum
	// quotable covers everything representable in a quoted-string,
	// quote marks and backslashes included.
	quotable = "\t !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" + alnum
)

func randString(r *rand.Rand, alphabet string) string {
	b := make([]byte, 1+r.Intn(10))
	for i := 0; i < len(b); i++ {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}
