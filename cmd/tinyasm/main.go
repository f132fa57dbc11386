// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/tinyasm/internal"
	"github.com/ezrec/tinyasm/isa"
	"github.com/ezrec/tinyasm/mem"
	"github.com/ezrec/tinyasm/programs"
	"github.com/ezrec/tinyasm/script"
	"github.com/ezrec/tinyasm/translate"
)

func main() {
	var builtin string
	var starfile string
	var output string
	var outdir string
	var revision string
	var listing bool
	var disasm string
	var lang string
	var verbose bool

	flag.StringVar(&builtin, "p", "", "Built-in programs, comma separated, or 'all' ("+strings.Join(programs.Names(), ", ")+")")
	flag.StringVar(&starfile, "s", "", ".star program script to load")
	flag.StringVar(&output, "o", "-", ".mem output for a single program")
	flag.StringVar(&outdir, "d", "", "Directory for one <name>.mem per program")
	flag.StringVar(&revision, "r", isa.REV_LATEST.String(), "CPU revision to check against")
	flag.BoolVar(&listing, "l", false, "Write a listing to stderr")
	flag.StringVar(&disasm, "x", "", ".mem file to disassemble")
	flag.StringVar(&lang, "lang", "", "Message language, overriding the locale")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			atexit.Fatalf("-lang %v: %v", lang, err)
		}
	}

	rev, err := isa.ParseRevision(revision)
	if err != nil {
		atexit.Fatalf("-r: %v", err)
	}

	if len(disasm) != 0 {
		data, err := mem.ReadFile(disasm)
		if err != nil {
			atexit.Fatalf("%v: %v", disasm, err)
		}
		prog, err := mem.Disassemble(strings.TrimSuffix(filepath.Base(disasm), ".mem"), data)
		if err != nil {
			atexit.Fatalf("%v: %v", disasm, err)
		}
		err = prog.Listing(os.Stdout)
		if err != nil {
			atexit.Fatal(err)
		}
		atexit.Exit(0)
	}

	var builtins []*mem.Program
	var loaded []*mem.Program

	if len(builtin) != 0 {
		all := programs.All()
		names := strings.Split(builtin, ",")
		if builtin == "all" {
			names = programs.Names()
		}
		for _, name := range names {
			fn, ok := all[name]
			if !ok {
				atexit.Fatalf("-p %v: unknown program (%v)", name, strings.Join(programs.Names(), ", "))
			}
			builtins = append(builtins, fn())
		}
	}

	if len(starfile) != 0 {
		inf, err := os.Open(starfile)
		if err != nil {
			atexit.Fatalf("%v: %v", starfile, err)
		}
		atexit.Register(func() { inf.Close() })

		ld := &script.Loader{Verbose: verbose}
		loaded, err = ld.Parse(starfile, inf)
		if err != nil {
			atexit.Fatal(err)
		}
	}

	progs := slices.Collect(internal.IterSeqConcat(slices.Values(builtins), slices.Values(loaded)))

	if len(progs) == 0 {
		flag.Usage()
		atexit.Exit(2)
	}

	for _, prog := range progs {
		err = prog.Check(rev)
		if err != nil {
			atexit.Fatal(err)
		}

		if listing {
			log.Printf("%v: %d bytes", prog.Name, prog.Size())
			err = prog.Listing(os.Stderr)
			if err != nil {
				atexit.Fatal(err)
			}
		}
	}

	if len(outdir) != 0 {
		for _, prog := range progs {
			name := filepath.Join(outdir, prog.Name+".mem")
			if verbose {
				log.Printf("%v: writing %v", prog.Name, name)
			}
			err = mem.WriteFile(name, prog.Binary())
			if err != nil {
				atexit.Fatalf("%v: %v", name, err)
			}
		}
		atexit.Exit(0)
	}

	if len(progs) != 1 {
		names := slices.Collect(internal.IterSeqMap(slices.Values(progs), func(prog *mem.Program) string {
			return prog.Name
		}))
		atexit.Fatalf("%v programs (%v) need -d", len(progs), strings.Join(names, ", "))
	}

	prog := progs[0]
	if output == "-" {
		err = mem.WriteHex(os.Stdout, prog.Binary())
	} else {
		err = mem.WriteFile(output, prog.Binary())
	}
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	atexit.Exit(0)
}
