package zone_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jroosing/rootdns/internal/wire"
	"github.com/jroosing/rootdns/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rootZoneText = `
$ORIGIN .
$TTL 86400
@ IN SOA a.root-servers.net. nstld.verisign-grs.com. 2024010100 1800 900 604800 86400
@ IN NS a.root-servers.net.
@ IN NS b.root-servers.net.
@ IN DNSKEY 0102ABCD

com IN NS a.gtld-servers.net.
com IN NS b.gtld-servers.net.
com IN DS 3039080200

a.gtld-servers.net. IN A 192.5.6.30
b.gtld-servers.net. IN A 192.33.14.30
`

func mustParse(t *testing.T) *zone.Zone {
	t.Helper()
	z, err := zone.ParseText(rootZoneText)
	require.NoError(t, err)
	return z
}

func TestParseTextBuildsRootApexSOA(t *testing.T) {
	z := mustParse(t)
	set, match := z.Lookup("")
	require.True(t, match)

	a := set.Answer(wire.CategoryRootSOA, false)
	assert.False(t, a.IsEmpty())
	assert.Equal(t, uint16(1), a.ANCount)
	assert.True(t, a.Authoritative)
}

func TestParseTextBuildsRootNS(t *testing.T) {
	z := mustParse(t)
	set, _ := z.Lookup("")

	a := set.Answer(wire.CategoryRootNS, false)
	assert.Equal(t, uint16(2), a.ANCount)
	assert.True(t, a.Authoritative)
}

func TestParseTextRootNodataCarriesSOAInAuthority(t *testing.T) {
	z := mustParse(t)
	set, _ := z.Lookup("")

	a := set.Answer(wire.CategoryRootNodata, false)
	assert.Equal(t, uint16(0), a.ANCount)
	assert.Equal(t, uint16(1), a.NSCount)
	assert.True(t, a.Authoritative)
}

func TestParseTextRootAnyUnionsApexRRsets(t *testing.T) {
	z := mustParse(t)
	set, _ := z.Lookup("")

	a := set.Answer(wire.CategoryRootAny, false)
	// SOA + 2 NS + DNSKEY
	assert.Equal(t, uint16(4), a.ANCount)
}

func TestParseTextTLDReferralIncludesGlue(t *testing.T) {
	z := mustParse(t)
	set, match := z.Lookup("com")
	require.True(t, match)

	a := set.Answer(wire.CategoryTLDReferral, false)
	assert.Equal(t, uint16(2), a.NSCount)
	assert.Equal(t, uint16(2), a.ARCount)
	assert.False(t, a.Authoritative, "delegation is a referral, not an authoritative answer")
}

func TestParseTextTLDDSIsAuthoritative(t *testing.T) {
	z := mustParse(t)
	set, _ := z.Lookup("com")

	a := set.Answer(wire.CategoryTLDDS, false)
	assert.Equal(t, uint16(1), a.ANCount)
	assert.True(t, a.Authoritative)
}

func TestParseTextMissReturnsNXDomainWithSOAAuthority(t *testing.T) {
	z := mustParse(t)
	set, match := z.Lookup("net")
	require.False(t, match)

	a := set.Answer(wire.CategoryNXDomain, false)
	assert.Equal(t, uint16(0), a.ANCount)
	assert.Equal(t, uint16(1), a.NSCount)
	assert.True(t, a.Authoritative)
}

func TestParseTextUnservedCategoryIsEmpty(t *testing.T) {
	z := mustParse(t)
	set, _ := z.Lookup("com")

	a := set.Answer(wire.CategoryRootSOA, false)
	assert.True(t, a.IsEmpty())
}

func TestParseTextRejectsOutOfScopeType(t *testing.T) {
	_, err := zone.ParseText(`
$ORIGIN .
$TTL 86400
@ IN SOA a.root-servers.net. nstld.verisign-grs.com. 1 1 1 1 1
www IN CNAME example.net.
`)
	assert.Error(t, err)
}

func TestParseTextRejectsMissingSOA(t *testing.T) {
	_, err := zone.ParseText(`
$ORIGIN .
$TTL 86400
@ IN NS a.root-servers.net.
`)
	assert.Error(t, err)
}

func TestParseTextRejectsNameTooDeepBelowApex(t *testing.T) {
	_, err := zone.ParseText(`
$ORIGIN .
$TTL 86400
@ IN SOA a.root-servers.net. nstld.verisign-grs.com. 1 1 1 1 1
www.com IN NS a.gtld-servers.net.
`)
	assert.Error(t, err)
}

func TestParseTextRejectsInvalidDSHex(t *testing.T) {
	_, err := zone.ParseText(`
$ORIGIN .
$TTL 86400
@ IN SOA a.root-servers.net. nstld.verisign-grs.com. 1 1 1 1 1
com IN NS a.gtld-servers.net.
com IN DS not-hex
`)
	assert.Error(t, err)
}

func TestParseTextRejectsMissingOrigin(t *testing.T) {
	_, err := zone.ParseText(`@ IN SOA a. b. 1 1 1 1 1`)
	assert.Error(t, err)
}

func TestParseTextParenthesizedRecordAndComments(t *testing.T) {
	z, err := zone.ParseText(`
$ORIGIN . ; root zone
$TTL 86400
@ IN SOA a.root-servers.net. nstld.verisign-grs.com. (
	2024010100 ; serial
	1800       ; refresh
	900        ; retry
	604800     ; expire
	86400 )    ; minimum
`)
	require.NoError(t, err)
	set, match := z.Lookup("")
	require.True(t, match)
	assert.False(t, set.Answer(wire.CategoryRootSOA, false).IsEmpty())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.zone")
	require.NoError(t, os.WriteFile(path, []byte(rootZoneText), 0o644))

	z, err := zone.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, z.Records, 9)
	_, match := z.Lookup("")
	assert.True(t, match)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := zone.LoadFile("/nonexistent/root.zone")
	assert.Error(t, err)
}

func TestDiscoverZoneFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.zone"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.zone"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := zone.DiscoverZoneFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "a.zone")
	assert.Contains(t, files[1], "b.zone")
}

func TestDiscoverZoneFilesNonexistentDir(t *testing.T) {
	_, err := zone.DiscoverZoneFiles("/nonexistent/dir")
	assert.Error(t, err)
}

func TestStoreLoadReflectsLatestPublish(t *testing.T) {
	z1 := mustParse(t)
	store := zone.NewStore(z1)
	assert.Same(t, z1, store.Load())

	z2 := mustParse(t)
	store.Store(z2)
	assert.Same(t, z2, store.Load())

	_, match := store.Lookup("com")
	assert.True(t, match)
}
