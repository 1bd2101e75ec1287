package sha256_test

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"testing"

	"github.com/revlog/digest/sha256"
)

var sink any

var benchSizes = []struct {
	name string
	in   []byte
}{
	{"small", []byte("a small commit record")},
	{"1KiB", bytes.Repeat([]byte("a"), 1<<10)},
	{"64KiB", bytes.Repeat([]byte("z"), 64<<10)},
}

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for _, tt := range benchSizes {
			got := sha256.Sum(tt.in)
			want := stdsha256.Sum256(tt.in)
			if got != want {
				b.Fatalf("digest mismatch for %q\n\tGot:  %x\n\tWant: %x", tt.name, got, want)
			}
			sink = got
		}
	}

	if sink == nil {
		b.Fatal("Benchmark did not run!")
	}

	sink = nil
}
