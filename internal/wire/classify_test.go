package wire_test

import (
	"testing"

	"github.com/jroosing/rootdns/internal/wire"
	"github.com/stretchr/testify/assert"
)

func TestClassifyNoMatch(t *testing.T) {
	assert.Equal(t, wire.CategoryNXDomain, wire.Classify(false, 0, wire.TypeSOA))
	assert.Equal(t, wire.CategoryNXDomain, wire.Classify(false, 2, wire.TypeANY))
}

func TestClassifyTLDLevel(t *testing.T) {
	assert.Equal(t, wire.CategoryTLDDS, wire.Classify(true, 1, wire.TypeDS))
	assert.Equal(t, wire.CategoryTLDReferral, wire.Classify(true, 1, wire.TypeNS))
	assert.Equal(t, wire.CategoryTLDReferral, wire.Classify(true, 1, wire.TypeANY))
	assert.Equal(t, wire.CategoryTLDReferral, wire.Classify(true, 2, wire.TypeDS))
}

func TestClassifyRootLevel(t *testing.T) {
	tests := []struct {
		qtype uint16
		want  wire.Category
	}{
		{wire.TypeSOA, wire.CategoryRootSOA},
		{wire.TypeNS, wire.CategoryRootNS},
		{wire.TypeNSEC, wire.CategoryRootNSEC},
		{wire.TypeDNSKEY, wire.CategoryRootDNSKEY},
		{wire.TypeANY, wire.CategoryRootAny},
		{1 /* A */, wire.CategoryRootNodata},
		{16 /* TXT */, wire.CategoryRootNodata},
		{wire.TypeDS, wire.CategoryRootNodata},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wire.Classify(true, 0, tt.qtype), "qtype=%d", tt.qtype)
	}
}

// TestClassifyCrossProduct walks the full table named by the design:
// {0,1,>=2} labels x a representative type set x match/no-match.
func TestClassifyCrossProduct(t *testing.T) {
	types := []uint16{wire.TypeSOA, wire.TypeNS, wire.TypeNSEC, wire.TypeDNSKEY, wire.TypeDS, wire.TypeANY, 1, 16}
	labelCounts := []int{0, 1, 2}

	for _, match := range []bool{true, false} {
		for _, labels := range labelCounts {
			for _, qt := range types {
				got := wire.Classify(match, labels, qt)
				switch {
				case !match:
					assert.Equal(t, wire.CategoryNXDomain, got)
				case labels >= 1:
					if labels == 1 && qt == wire.TypeDS {
						assert.Equal(t, wire.CategoryTLDDS, got)
					} else {
						assert.Equal(t, wire.CategoryTLDReferral, got)
					}
				default:
					var want wire.Category
					switch qt {
					case wire.TypeSOA:
						want = wire.CategoryRootSOA
					case wire.TypeNS:
						want = wire.CategoryRootNS
					case wire.TypeNSEC:
						want = wire.CategoryRootNSEC
					case wire.TypeDNSKEY:
						want = wire.CategoryRootDNSKEY
					case wire.TypeANY:
						want = wire.CategoryRootAny
					default:
						want = wire.CategoryRootNodata
					}
					assert.Equal(t, want, got)
				}
			}
		}
	}
}
