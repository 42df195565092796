// Command vecinfo prints the CPU features, registered kernel variants and
// per-operation kernel selection of the vecops dispatch layer on this
// machine.
//
// Usage:
//
//	vecinfo [flags]
//
// Examples:
//
//	vecinfo
//	vecinfo -features
//	vecinfo -ops
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	vecops "github.com/cwbudde/algo-vecops"
	"github.com/cwbudde/algo-vecops/cpu"
)

func main() {
	featuresOnly := flag.Bool("features", false, "print detected CPU features only")
	opsOnly := flag.Bool("ops", false, "print the per-operation kernel selection only")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features, registered kernel variants and the\n")
		fmt.Fprintf(os.Stderr, "per-operation kernel selection for this machine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument %q\n", flag.Arg(0))
		os.Exit(1)
	}

	switch {
	case *featuresOnly:
		printFeatures()
	case *opsOnly:
		printSelection()
	default:
		printFeatures()
		fmt.Println()
		printImplementations()
		fmt.Println()
		printSelection()
	}
}

func printFeatures() {
	f := cpu.DetectFeatures()

	fmt.Printf("Architecture: %s\n", f.Architecture)

	var have []string
	for _, c := range []struct {
		name string
		on   bool
	}{
		{"SSE2", f.HasSSE2},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"AVX-512", f.HasAVX512},
		{"NEON", f.HasNEON},
	} {
		if c.on {
			have = append(have, c.name)
		}
	}
	if len(have) == 0 {
		have = append(have, "none")
	}

	fmt.Printf("SIMD features: %s\n", strings.Join(have, ", "))
}

func printImplementations() {
	total := len(vecops.KernelSelection())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IMPL\tLEVEL\tPRIORITY\tELIGIBLE\tOPS")

	for _, impl := range vecops.Implementations() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%d/%d\n",
			impl.Name, impl.SIMDLevel, impl.Priority, impl.Eligible,
			len(impl.Ops), total)
	}

	w.Flush()
}

func printSelection() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tIMPL\tLEVEL")

	for _, choice := range vecops.KernelSelection() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", choice.Op, choice.Impl, choice.SIMDLevel)
	}

	w.Flush()
}
