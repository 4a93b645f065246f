// Command rootdns-zonecheck loads a zone file the same way rootdnsd
// does and prints one line per record, including which answer category
// the query-execution core would classify a matching query into.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/jroosing/rootdns/internal/dns"
	"github.com/jroosing/rootdns/internal/wire"
	"github.com/jroosing/rootdns/internal/zone"
)

func main() {
	zonePath := flag.String("zone", "", "Path to a zone file (or a directory of them)")
	flag.Parse()

	if *zonePath == "" {
		fmt.Fprintln(os.Stderr, "usage: rootdns-zonecheck -zone path/to/root.zone")
		os.Exit(2)
	}

	paths, err := resolveZonePaths(*zonePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve zone path: %v\n", err)
		os.Exit(1)
	}

	for _, path := range paths {
		if err := checkOne(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func resolveZonePaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return zone.DiscoverZoneFiles(path)
}

func checkOne(path string) error {
	z, err := zone.LoadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("zone: %s\n", path)
	fmt.Printf("ORIGIN: %s\n", z.Origin)
	fmt.Printf("DEFAULT_TTL: %d\n", z.DefaultTTL)
	fmt.Printf("TLDs: %d\n", z.TLDCount())
	fmt.Println("RECORDS:")

	recs := append([]zone.Record(nil), z.Records...)
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Type < b.Type
	})

	for _, rr := range recs {
		rdata := rr.RData
		if b, ok := rdata.([]byte); ok {
			rdata = fmt.Sprintf("% x", b)
		}
		fmt.Printf("  %-24s %8d IN %-8s %-20v %v\n",
			ownerLabel(rr.Name, z.Origin), rr.TTL, typeName(rr.Type), rdata,
			category(rr, z.Origin))
	}
	return nil
}

func ownerLabel(name, origin string) string {
	if name == "" || name == origin {
		return "@"
	}
	return name
}

func category(rr zone.Record, origin string) wire.Category {
	qlabels := 0
	if rr.Name != "" && rr.Name != origin {
		qlabels = 1
	}
	return wire.Classify(true, qlabels, rr.Type)
}

func typeName(code uint16) string {
	switch dns.RecordType(code) {
	case dns.TypeA:
		return "A"
	case dns.TypeAAAA:
		return "AAAA"
	case dns.TypeNS:
		return "NS"
	case dns.TypeSOA:
		return "SOA"
	case dns.TypeDS:
		return "DS"
	case dns.TypeDNSKEY:
		return "DNSKEY"
	case dns.TypeNSEC:
		return "NSEC"
	default:
		return fmt.Sprintf("TYPE%d", code)
	}
}
