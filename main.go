package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/mkch/gg"
	"github.com/typenotes/typegate/internal/check"
	"github.com/typenotes/typegate/internal/flags"
	"golang.org/x/tools/go/packages"
)

var cmdArgs *flags.Flags

func main() {
	cmdArgs = flags.Init()
	logLevel := slog.LevelError
	if cmdArgs.Debug {
		logLevel = slog.LevelDebug
	} else if cmdArgs.Verbose {
		logLevel = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(logLevel)

	slog.Debug("debug mode")

	var args []string
	if args = flag.Args(); len(args) == 0 {
		args = []string{"."}
	}

	if cmdArgs.IncludeTests {
		slog.Info("test code will be included")
	}

	n, err := gate(args...)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	if n > 0 {
		slog.Info(fmt.Sprintf("%d "+gg.If(n > 1, "diagnostics", "diagnostic"), n))
		if !cmdArgs.ExitZero {
			os.Exit(2)
		}
	}
	slog.Info("done.")
}

func logPackageErrors(pkgs []*packages.Package) int {
	var n int
	errModules := make(map[*packages.Module]bool)
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, err := range pkg.Errors {
			pos := gg.IfFunc(err.Pos == "" || err.Pos == "-",
				func() string { return "" },
				func() string { return err.Pos + ": " })
			slog.Error(pos + err.Msg)
			n++
		}

		// Print pkg.Module.Error once if present.
		mod := pkg.Module
		if mod != nil && mod.Error != nil && !errModules[mod] {
			errModules[mod] = true
			slog.Error(mod.Error.Err)
			n++
		}
	})
	return n
}

// gate loads pkgs, surfaces the checker's own diagnostics and reports every
// call to an annotated loosely typed function. The returned count is the
// total number of diagnostics.
func gate(pkgs ...string) (n int, err error) {
	const mode = packages.NeedName |
		packages.NeedCompiledGoFiles |
		packages.NeedSyntax |
		packages.NeedTypes |
		packages.NeedTypesInfo |
		packages.NeedModule

	loaded, err := packages.Load(&packages.Config{
		Mode:  mode | gg.If(cmdArgs.IncludeTests, packages.NeedForTest, 0),
		Tests: cmdArgs.IncludeTests}, pkgs...)
	if err != nil {
		return
	}
	if len(loaded) == 0 {
		return 0, errors.New("no package loaded")
	}

	// The compile-time half of the report: whatever the checker found while
	// loading, type mismatches included.
	n = logPackageErrors(loaded)

	loaded = filterPackages(loaded)

	funcs := make(check.Funcs)
	for _, pkg := range loaded {
		slog.Info("collecting annotations...\t", "pkg", pkg.PkgPath)
		if err = check.Collect(pkg, funcs); err != nil {
			return
		}
	}
	if len(funcs) == 0 {
		slog.Info("no annotated functions found")
		return
	}

	for _, pkg := range loaded {
		slog.Info("scanning call sites...\t", "pkg", pkg.PkgPath)
		for _, report := range check.Calls(pkg, funcs, cmdArgs.Ignore.Contains) {
			fmt.Println(report)
			n++
		}
	}
	return
}

// filterPackages filters out the test binary package(pkg.test)
// and the packages whose black box test package presents, so no file is
// scanned twice when tests are included.
func filterPackages(pkgs []*packages.Package) (result []*packages.Package) {
	if !cmdArgs.IncludeTests {
		result = pkgs
		return
	}
	result = make([]*packages.Package, 0, len(pkgs))
	var blackBoxTests []*packages.Package
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.ID, ".test") {
			continue
		}
		// The ID of black box test package is
		// "id_pkg_under_test [id_pkg_under_test.test]"
		// The black box test package includes all files in package under test.
		testing := strings.HasSuffix(pkg.ID, ".test]")
		if testing && strings.HasPrefix(pkg.ID, pkg.ForTest+" ") {
			blackBoxTests = append(blackBoxTests, pkg)
		}
		result = append(result, pkg)
	}

	for _, black := range blackBoxTests {
		// delete the package that black is for.
		result = slices.DeleteFunc(result, func(pkg *packages.Package) bool { return pkg.ID == black.ForTest })
	}
	return
}
