package translate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/you-not-fish/smc/internal/codegen"
	"github.com/you-not-fish/smc/internal/syntax"
	"github.com/you-not-fish/smc/internal/types"
)

// Result is everything one successful compilation produces.
type Result struct {
	Program  *codegen.Program
	Symbols  *types.Table
	Labels   int // number of labels allocated
	MaxDepth int // deepest statement or expression nesting
}

// Compile translates the program read from src. filename is used in
// positions only. errh, if non-nil, is called with the error that stops
// the translation before Compile returns it.
func Compile(filename string, src io.Reader, errh func(err error)) (*Result, error) {
	s := syntax.NewScanner(filename, src)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	res := &Result{
		Program: codegen.NewProgram(),
		Symbols: types.NewTable(),
	}
	p := NewParser(s, res.Symbols, res.Program, errh)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	res.Labels = p.Labels()
	res.MaxDepth = p.MaxDepth()
	return res, nil
}

// Config controls CompileFile and CheckFile.
type Config struct {
	// Phase, if non-nil, is called after each completed phase: "compile",
	// "verify" and, for CompileFile, "write".
	Phase func(name string, res *Result)
}

func (conf *Config) phase(name string, res *Result) {
	if conf != nil && conf.Phase != nil {
		conf.Phase(name, res)
	}
}

// CompileFile compiles sourcePath, checks the program with codegen.Verify
// and writes the program text to outputPath. The output file is replaced
// atomically; when compilation fails any previous output file is removed
// so that no stale program is mistaken for the result. conf may be nil.
func CompileFile(sourcePath, outputPath string, conf *Config) (*Result, error) {
	res, err := CheckFile(sourcePath, conf)
	if err != nil {
		if rmErr := removeStale(outputPath); rmErr != nil {
			return nil, fmt.Errorf("%w (%v)", err, rmErr)
		}
		return nil, err
	}

	if err := writeProgram(outputPath, res.Program); err != nil {
		return nil, err
	}
	conf.phase("write", res)
	return res, nil
}

// CheckFile compiles sourcePath and checks the program with codegen.Verify
// without writing anything. conf may be nil.
func CheckFile(sourcePath string, conf *Config) (*Result, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := Compile(sourcePath, f, nil)
	if err != nil {
		return nil, err
	}
	conf.phase("compile", res)

	if err := codegen.Verify(res.Program, res.Symbols); err != nil {
		return nil, err
	}
	conf.phase("verify", res)

	return res, nil
}

// removeStale removes the output file left by an earlier compilation.
// A missing file is not an error.
func removeStale(outputPath string) error {
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale output: %w", err)
	}
	return nil
}

// writeProgram writes the program text to a temporary file next to path
// and renames it into place.
func writeProgram(path string, prog *codegen.Program) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := prog.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
