package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	dcc "dcc86"
)

// memSymtab is the thin in-process SymbolTable/ProcSet this driver feeds
// the analysis core. A real front end resolves these against a loaded
// symbol database; this CLI only needs enough of each interface to drive
// the phases end to end against the discovered procedure set.
type memSymtab struct {
	code map[uint32]bool
}

func (s *memSymtab) Symbol(idx int) (addr uint32, size uint32, ok bool) { return 0, 0, false }
func (s *memSymtab) IsCode(addr uint32) bool                            { return s.code[addr] }

type procSet struct {
	byAddr map[uint32]*dcc.Function
	order  []*dcc.Function
}

func newProcSet() *procSet { return &procSet{byAddr: make(map[uint32]*dcc.Function)} }

func (p *procSet) Functions() []*dcc.Function { return p.order }

func (p *procSet) FunctionAt(addr uint32) (*dcc.Function, bool) {
	f, ok := p.byAddr[addr]
	return f, ok
}

func (p *procSet) add(f *dcc.Function) {
	p.byAddr[f.Entry] = f
	p.order = append(p.order, f)
}

// entryPoint is one requested starting point: a name and its image
// offset, taken either from --entries or the --codeaddrs side file.
type entryPoint struct {
	name string
	addr uint32
}

func parseEntries(spec string) ([]entryPoint, error) {
	var out []entryPoint
	for i, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 0, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid entry offset %q", tok)
		}
		out = append(out, entryPoint{name: fmt.Sprintf("proc_%d", i), addr: uint32(v)})
	}
	return out, nil
}

func loadCodeAddrs(path string) (map[string]uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading codeaddrs file")
	}
	var m map[string]uint32
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "parsing codeaddrs JSON")
	}
	return m, nil
}

// sweepProcedure performs a straight-line decode of one procedure
// starting at entry, stopping at the first RET/RETF/IRET, an
// out-of-range scan, or a known-invalid opcode. Real procedure boundary
// discovery (following every branch, handling fallthrough past a
// terminating CALL, etc.) belongs to a full front end; this is
// deliberately the simplest sweep that produces a decodable body for the
// phases below to exercise.
func sweepProcedure(img *dcc.Image, name string, entry uint32) (*dcc.Function, error) {
	f := dcc.NewFunction(name, entry)
	ip := entry
	for {
		ic, status := dcc.Scan(img, ip)
		if status == dcc.InvalidOpcode || status == dcc.Invalid386Op || status == dcc.IPOutOfRange {
			return nil, errors.Errorf("%s at offset %#x: %s", f.Name, ip, status)
		}
		if status.IsWarning() {
			logrus.WithFields(logrus.Fields{"proc": name, "ip": ip}).Warn(status.String())
		}
		f.ICode.Append(ic)
		ip += uint32(ic.NumBytes)

		switch ic.Opcode {
		case dcc.IRET, dcc.IRETF, dcc.IIRET:
			return f, nil
		}
		if int(ip) >= img.Len() {
			return f, nil
		}
	}
}

func resolveCallTargets(procs *procSet) {
	for _, f := range procs.order {
		icodes := f.ICode.All()
		for i := range icodes {
			ic := &icodes[i]
			if ic.Opcode != dcc.ICALL && ic.Opcode != dcc.ICALLF {
				continue
			}
			if !ic.Flags.Any(dcc.FlagI) {
				continue
			}
			if callee, ok := procs.FunctionAt(uint32(ic.Src.Immed)); ok {
				ic.Src.Proc = callee
			}
		}
	}
}

func runScan(imgPath string, kind dcc.ImageKind, entries []entryPoint) error {
	raw, err := os.ReadFile(imgPath)
	if err != nil {
		return errors.Wrap(err, "reading image")
	}
	img := &dcc.Image{Bytes: raw, Kind: kind, Reloc: map[uint32]struct{}{}}

	logrus.Info("phase: decode")
	procs := newProcSet()
	for _, e := range entries {
		f, err := sweepProcedure(img, e.name, e.addr)
		if err != nil {
			return err
		}
		procs.add(f)
	}
	resolveCallTargets(procs)

	symtab := &memSymtab{code: make(map[uint32]bool)}
	for _, f := range procs.order {
		for _, ic := range f.ICode.All() {
			symtab.code[ic.Label] = true
		}
	}

	logrus.Info("phase: cfg build")
	for _, f := range procs.order {
		dcc.CreateCFG(f)
	}

	logrus.Info("phase: cfg simplify")
	for _, f := range procs.order {
		dcc.SimplifyCFG(f)
		f.MarkImpure(symtab)
	}

	logrus.Info("phase: call graph")
	graph := dcc.NewCallGraph()
	for _, f := range procs.order {
		for _, ic := range f.ICode.All() {
			if callee := ic.Src.Proc; callee != nil {
				graph.InsertCallerCallee(f, callee)
			}
		}
	}

	logrus.Info("phase: argument recovery")
	for _, f := range procs.order {
		dcc.RecoverArgs(f, img)
	}

	sort.Slice(procs.order, func(i, j int) bool { return procs.order[i].Entry < procs.order[j].Entry })
	for _, f := range procs.order {
		fmt.Printf("%s (entry %#x): %d basic blocks, %d args\n",
			f.Name, f.Entry, len(f.DfsLast), f.Frame.NumArgs)
	}

	var sb strings.Builder
	graph.Write(&sb)
	fmt.Print(sb.String())

	return nil
}

func main() {
	app := &cli.App{
		Name:  "dcc",
		Usage: "analysis core for a 16-bit 8086 DOS decompiler",
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "decode entry points, build and simplify their CFGs, and print the call graph",
				ArgsUsage: "image",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "com", Usage: "treat the image as a .COM file (default)"},
					&cli.BoolFlag{Name: "exe", Usage: "treat the image as an .EXE file"},
					&cli.StringFlag{Name: "entries", Usage: "comma-separated list of entry-point image offsets"},
					&cli.StringFlag{Name: "codeaddrs", Usage: "JSON file mapping procedure name to entry offset"},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() < 1 {
						return cli.Exit("missing image argument", 1)
					}
					kind := dcc.KindCOM
					if c.Bool("exe") {
						kind = dcc.KindEXE
					}

					var entries []entryPoint
					if spec := c.String("entries"); spec != "" {
						parsed, err := parseEntries(spec)
						if err != nil {
							return cli.Exit(err, 1)
						}
						entries = parsed
					}
					if path := c.String("codeaddrs"); path != "" {
						named, err := loadCodeAddrs(path)
						if err != nil {
							return cli.Exit(err, 1)
						}
						for name, addr := range named {
							entries = append(entries, entryPoint{name: name, addr: addr})
						}
					}
					if len(entries) == 0 {
						return cli.Exit("no entry points given (use --entries or --codeaddrs)", 1)
					}

					if err := runScan(c.Args().First(), kind, entries); err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
