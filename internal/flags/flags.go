package flags

import (
	_ "embed"
	"flag"
	"fmt"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/mkch/gg"
)

type Flags struct {
	IncludeTests bool
	ExitZero     bool
	Ignore       ignoreFlag
	Debug        bool
	Verbose      bool
}

type ignoreFlag struct {
	names gg.Set[string]
	pkgs  map[string]gg.Set[string]
}

// ((path_seg/)*(pkg.))?id
var reName = regexp.MustCompile(`^(?:((?:\w[\w\.\-_]+/)*(?:[\pL][\pL\p{Nd}]*))\.)?([\pL][\pL\p{Nd}]*)$`)

func parseName(value string) (pkg, name string) {
	matches := reName.FindStringSubmatch(value)
	if matches == nil {
		return "", ""
	}
	return matches[1], matches[2]
}

func (f *ignoreFlag) Set(value string) error {
	for flag := range strings.SplitSeq(value, ",") {
		if err := f.setFlag(flag); err != nil {
			return err
		}
	}

	return nil
}

func (f *ignoreFlag) setFlag(value string) error {
	value = strings.TrimSpace(value)
	pkg, name := parseName(value)
	if name == "" {
		return fmt.Errorf("invalid argument: %v", value)
	}

	if pkg == "" {
		if f.names == nil {
			f.names = make(gg.Set[string])
		}
		f.names.Add(name)
		return nil
	}

	if f.pkgs == nil {
		f.pkgs = make(map[string]gg.Set[string])
	}
	if names := f.pkgs[pkg]; names != nil {
		names.Add(name)
	} else {
		f.pkgs[pkg] = make(gg.Set[string])
		f.pkgs[pkg].Add(name)
	}

	return nil
}

func (f *ignoreFlag) Contains(pkg, name string) bool {
	if f.names != nil && f.names.Contains(name) {
		return true
	}
	if f.pkgs != nil {
		if names := f.pkgs[pkg]; names != nil {
			if names.Contains(name) {
				return true
			}
		}
		if names := f.pkgs[path.Base(pkg)]; names != nil {
			return names.Contains(name)
		}
	}

	return false
}

func (f *ignoreFlag) Empty() bool {
	return len(f.names) == 0 && len(f.pkgs) == 0
}

func (f *ignoreFlag) String() string {
	if f == nil {
		return ""
	}
	var s []string
	if f.names != nil {
		s = slices.Collect(maps.Keys(f.names))
	}
	if f.pkgs != nil {
		for pkg, names := range f.pkgs {
			for name := range names {
				s = append(s, pkg+"."+name)
			}
		}
	}
	return strings.Join(s, ",")
}

//go:embed usage.txt
var usage string

func Init() *Flags {
	var flags Flags
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.BoolVar(&flags.IncludeTests, "include-test", false, "Include test code.")
	flag.BoolVar(&flags.IncludeTests, "t", false, "Alias for -include-test.")
	flag.BoolVar(&flags.ExitZero, "exit-zero", false, "Exit with status 0 even if diagnostics were reported.")
	flag.Var(&flags.Ignore, "ignore", "Do not report calls to the listed functions. The format of name is\nName | pkg.Name | path/pkg.Name\nNames can be listed with commas or specified via repeated -ignore flags.")
	flag.BoolVar(&flags.Debug, "debug", false, "Enable debug mode.")
	flag.BoolVar(&flags.Verbose, "v", false, "Enable verbose mode.")
	flag.Parse()
	return &flags
}
