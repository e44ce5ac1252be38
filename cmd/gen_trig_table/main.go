// Command gen_trig_table writes the (tan(θ/2), sin θ) lookup table used by
// the fixed package's shear-rotation coefficients.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"os"
	"path/filepath"
)

const (
	steps   = 1024 // angle units per turn
	entries = steps / 4
	perLine = 8
	one     = 1 << 16
)

func main() {
	var out string
	flag.StringVar(&out, "out", filepath.Join("tinyengine", "fixed", "trig_table.go"), "Output file")
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: formatting table: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d entries to %s\n", entries, out)
}

func table() []int32 {
	values := make([]int32, 0, 2*entries)
	for i := 0; i < entries; i++ {
		theta := float64(i) * 2 * math.Pi / steps
		values = append(values,
			int32(math.Round(math.Tan(theta/2)*one)),
			int32(math.Round(math.Sin(theta)*one)))
	}
	return values
}

func generate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_trig_table; DO NOT EDIT.\n\n")
	buf.WriteString("package fixed\n\n")
	fmt.Fprintf(&buf, "// tanSinTable holds (tan(θ/2), sin θ) pairs in Q16.16 for θ = i*2π/%d, i in [0, %d).\n", steps, entries)
	buf.WriteString("var tanSinTable = [tableLen]int32{\n")

	values := table()
	for i := 0; i < len(values); i += perLine {
		buf.WriteString("\t")
		for j, v := range values[i : i+perLine] {
			if j > 0 {
				buf.WriteString(" ")
			}
			fmt.Fprintf(&buf, "%d,", v)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
