// Command main replays the inplace walkthrough: four long strings are
// emplaced, iterated in reverse, erased, swapped, inserted and resized. With
// --rounds it repeats the walkthrough silently, and --memprofile writes a heap
// profile afterwards to confirm the vector itself never allocates.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/pflag"

	"github.com/rawbytedev/inplace"
	"github.com/rawbytedev/inplace/tracing"
)

type strings4 = inplace.Vector[string, [4]string]

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var (
		trace      bool
		rounds     int
		memProfile string
	)
	flagSet := pflag.NewFlagSet("inplace-walkthrough", pflag.ContinueOnError)
	flagSet.BoolVar(&trace, "trace", false, "log entry and exit of every mutation to stderr")
	flagSet.IntVar(&rounds, "rounds", 1, "number of times to replay the walkthrough")
	flagSet.StringVar(&memProfile, "memprofile", "", "write a heap profile to this file when done")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rounds < 1 {
		return fmt.Errorf("--rounds must be at least 1, got %d", rounds)
	}

	var logger *slog.Logger
	if trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if memProfile != "" {
		runtime.MemProfileRate = 1
	}
	for i := 0; i < rounds; i++ {
		w := out
		if i > 0 {
			w = io.Discard
		}
		if err := walkthrough(w, logger); err != nil {
			return err
		}
	}
	if memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		return pprof.WriteHeapProfile(f)
	}
	return nil
}

func walkthrough(out io.Writer, logger *slog.Logger) error {
	var ivStore, otherStore strings4
	iv := tracing.Wrap(&ivStore, logger)
	other := tracing.Wrap(&otherStore, logger)

	section := func(title string) {
		fmt.Fprintf(out, "--- %s\n", title)
	}
	dump := func(v *tracing.Vector[string, [4]string]) {
		for s := range v.Values() {
			fmt.Fprintln(out, s)
		}
	}

	section("emplace 4 strings")
	for _, s := range []string{
		"1. Hello, this is a pretty long string that will not fit in SSO",
		"2. world, now this is very funny stuff to fix and trix with",
		"3. whohoo, this is also a long string with no SSO I hope",
		"4. yet another long string that will be moved",
	} {
		if _, err := iv.EmplaceBack(func(p *string) error { *p = s; return nil }); err != nil {
			return err
		}
	}
	dump(iv)

	section("reverse iterator")
	for _, s := range iv.Backward() {
		fmt.Fprintln(out, s)
	}

	section("erase two in the middle")
	at := iv.Erase(1, 3)
	fmt.Fprintln(out, iv.Get(at))
	iv.Swap(&otherStore)
	if iv.Len() != 0 || other.Len() != 2 {
		return fmt.Errorf("swap left %d and %d elements", iv.Len(), other.Len())
	}
	dump(other)

	section("with one added at end")
	if _, err := other.Insert(other.Len(), "5. a long string added at end will be nice"); err != nil {
		return err
	}
	dump(other)

	section("with one added at begin")
	if _, err := other.Insert(0, "0. a long string added at begin is fine"); err != nil {
		return err
	}
	dump(other)

	section("insert with count")
	iv.Clear()
	if _, err := iv.InsertN(0, 3, "Here be three copies of the same string inserted"); err != nil {
		return err
	}
	const second = "And one inserted second"
	at, err := iv.InsertN(1, 1, second)
	if err != nil {
		return err
	}
	if iv.Get(at) != second {
		return fmt.Errorf("insert returned %d holding %q", at, iv.Get(at))
	}
	dump(iv)

	section("insert with a range")
	if err := iv.Resize(2); err != nil {
		return err
	}
	two := []string{
		`2. Now "Here be three copies..." is first and "And one inserted second" last`,
		"3. And I am the third string",
	}
	at, err = iv.Insert(1, two...)
	if err != nil {
		return err
	}
	if iv.Len() != 4 || iv.Get(at) != two[0] || iv.Get(at+1) != two[1] {
		return fmt.Errorf("range insert produced %v", iv.Slice())
	}
	dump(iv)

	section("erase last and first, insert two")
	iv.EraseAt(iv.Len() - 1)
	iv.EraseAt(0)
	if _, err := iv.Insert(1, "2.3 - I am the second string", "2.7 - and I am the third string, the fourth one is lying"); err != nil {
		return err
	}
	dump(iv)

	section("one more does not fit")
	if _, err := iv.PushBack("overflow"); !errors.Is(err, inplace.ErrCapacityExceeded) {
		return fmt.Errorf("push on full vector: got %v", err)
	}
	fmt.Fprintf(out, "len %d cap %d\n", iv.Len(), iv.Cap())
	return nil
}
