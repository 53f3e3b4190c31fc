// Package aoc is the shared plumbing for the Advent of Code 2023 solutions:
// the sample-checking runner, input and parse helpers, and a few small
// generic containers.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kr/pretty"
	"github.com/pkg/profile"
	"golang.org/x/exp/maps"
)

// Answer is the pair of results every day produces.
type Answer struct {
	One, Two int
}

func (a Answer) String() string {
	return fmt.Sprintf("Part one: %d\nPart two: %d", a.One, a.Two)
}

// Main reads the puzzle input from stdin, solves it and prints the answer.
// It exits non-zero if the input can't be read or solved.
func Main(solve func(input string) (Answer, error)) {
	log.SetFlags(0)
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	a, err := solve(string(in))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a)
}

var debug atomic.Bool

// SetDebug turns Debug and Debugf output on or off.
func SetDebug(v bool) {
	debug.Store(v)
}

// Debug pretty-prints v when debug mode is on.
func Debug(v ...any) {
	if debug.Load() {
		pretty.Println(v...)
	}
}

// Debugf logs a formatted line when debug mode is on.
func Debugf(format string, args ...any) {
	if debug.Load() {
		log.Printf(format, args...)
	}
}

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// funcs in src, keyed by func name. A sample without input reuses the
// input of the previous one.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded (as a pointer) in the solver struct passed to Run.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Input returns the input for the running part: the sample in sample mode,
// otherwise the contents of the day's input file.
func (p *Puzzle) Input() string {
	if p.SampleMode {
		return p.Sample().input
	}
	if p.input == nil {
		p.input = MustGet(os.ReadFile(inputPath(p.year, p.day.day)))
	}
	return string(p.input)
}

func inputPath(year, day int) string {
	dir := Or(flagInputs, strconv.Itoa(year))
	return filepath.Join(dir, fmt.Sprintf("%d.input", day))
}

// ForLinesY calls onLine for each line of input with its 0-based row.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	for y, line := range Lines(p.Input()) {
		onLine(y, line)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	Debug(v...)
}

// Debugf only logs while checking samples, real inputs are too noisy.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods finds the methods of x named D{day}p{part}. Each must
// have the signature func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i)
		if _, ok := m.Interface().(func() any); !ok {
			log.Fatalf("%s has type %v; want func() any", mn, m.Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			// Looked up on every call so the method sees the Puzzle set by runDay.
			fn:   func() any { return m.Call(nil)[0].Interface() },
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
	flagProfile    string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", "", "directory holding {day}.input files; defaults to the year")
	flag.StringVar(&flagProfile, "profile", "", "write a profile: cpu or mem")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay reports whether every sample of the day matched.
func runDay(slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// Run runs every D{day}p{part} method of slvr, a pointer to a struct
// embedding *Puzzle. src is the source of the file declaring the methods;
// their doc comments hold the samples in the form
//
//	want=<answer>
//
//	<sample input>
//
// Run exits non-zero if any sample answer doesn't match.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()
	SetDebug(flagDebug)
	if !runDays(year, slvr, days, samples) {
		os.Exit(1)
	}
}

func runDays(year int, slvr any, days map[int]day, samples map[string]sample) bool {
	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("unknown -profile %q; want cpu or mem", flagProfile)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		return runDay(slvr, year, day, samples)
	}

	ok := true
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		ok = runDay(slvr, year, days[day], samples) && ok
		fmt.Println()
	}
	return ok
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
