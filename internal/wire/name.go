package wire

// ParseName parses a question-section owner name from r, positioned at
// the first length byte, and consumes labels up to and including the
// terminating zero-length (root) label.
//
// Rules enforced (RFC 1035 Section 4.1.2, restricted to what a question
// section may legally contain):
//
//  1. A label length byte with either of its top two bits set (>= 0xC0)
//     is rejected: compression pointers are illegal in a question.
//  2. The total encoded length (length bytes plus label bodies, not
//     counting the terminator) must not exceed 255.
//  3. A message that runs out of bytes before the terminating root
//     label is rejected rather than silently accepted.
//
// This server answers a single-apex zone, so the lookup key it needs is
// only the top-level label: the last non-root label encountered before
// the terminator (e.g. "com" out of "www.example.com"). ParseName
// returns that label lowercased (ASCII-only fold) as qname, along with
// the total number of labels in the name (0 for the root itself).
func ParseName(r *ReadBuffer) (qname string, labels int, ok bool) {
	total := 0
	lastStart := 0
	terminated := false

	for r.Available() > 0 {
		c, _ := r.ReadUint8()
		if c == 0 {
			terminated = true
			break
		}
		if c&0xC0 != 0 {
			return "", 0, false
		}

		lastStart = r.Position()
		labels++

		total += int(c) + 1
		if total > 255 {
			return "", 0, false
		}

		if _, ok := r.ReadBytes(int(c)); !ok {
			return "", 0, false
		}
	}

	if !terminated {
		return "", 0, false
	}
	if labels == 0 {
		return "", 0, true
	}

	labelLen := r.Position() - lastStart - 1
	return lowerASCII(r.Slice(lastStart, lastStart+labelLen)), labels, true
}

// lowerASCII returns a copy of b with 'A'..'Z' folded to 'a'..'z'; all
// other bytes are preserved bit-exact.
func lowerASCII(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
