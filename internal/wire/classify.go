package wire

// Category is one of the closed set of answer classifications this
// responder ever assigns to a query. The zone maps each Category to a
// pre-computed [Answer] for a given owner name.
type Category int

const (
	CategoryNXDomain Category = iota
	CategoryTLDReferral
	CategoryTLDDS
	CategoryRootSOA
	CategoryRootNS
	CategoryRootNSEC
	CategoryRootDNSKEY
	CategoryRootAny
	CategoryRootNodata
)

// Classify is a pure, branch-only function mapping a lookup outcome
// and question fields onto a [Category]. The guards are evaluated in
// the order the categories are declared; the first match wins.
func Classify(match bool, qlabels int, qtype uint16) Category {
	if !match {
		return CategoryNXDomain
	}
	if qlabels >= 1 {
		if qlabels == 1 && qtype == TypeDS {
			return CategoryTLDDS
		}
		return CategoryTLDReferral
	}
	switch qtype {
	case TypeSOA:
		return CategoryRootSOA
	case TypeNS:
		return CategoryRootNS
	case TypeNSEC:
		return CategoryRootNSEC
	case TypeDNSKEY:
		return CategoryRootDNSKEY
	case TypeANY:
		return CategoryRootAny
	default:
		return CategoryRootNodata
	}
}
