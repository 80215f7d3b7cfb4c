package core

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/confc/pkg/charset"
	"github.com/arthur-debert/confc/pkg/emitter"
	"github.com/arthur-debert/confc/pkg/errors"
	"github.com/arthur-debert/confc/pkg/filesystem"
	"github.com/arthur-debert/confc/pkg/logging"
	"github.com/arthur-debert/confc/pkg/parser"
	"github.com/arthur-debert/confc/pkg/paths"
	"github.com/arthur-debert/confc/pkg/types"
)

const (
	// DefaultOutputPath is used when no output path is given
	DefaultOutputPath = "output.yaml"
	// DefaultFileMode is the permission of written documents
	DefaultFileMode fs.FileMode = 0644
)

// CompileOptions contains options for compiling one source file
type CompileOptions struct {
	InputPath  string
	OutputPath string
	// Encodings is the probe order; empty means charset.DefaultCandidates
	Encodings []charset.Encoding
	FileMode  fs.FileMode
	// DryRun renders the document without writing it
	DryRun     bool
	FileSystem types.FS
}

// CompileResult describes a finished compilation
type CompileResult struct {
	InputPath  string
	OutputPath string
	Encoding   string
	Document   *types.Document
	Constants  int
	Output     []byte
	Written    bool
}

// Check decodes and parses the input without rendering or writing anything
func Check(opts CompileOptions) (*CompileResult, error) {
	logger := logging.GetLogger("core.check")
	defer logging.LogOperationStart(logger, "check")()

	opts = withDefaults(opts)
	return load(opts)
}

// Compile runs the full pipeline: read, decode, parse, emit and write. The
// output file is only touched once every earlier step has succeeded.
func Compile(opts CompileOptions) (*CompileResult, error) {
	logger := logging.GetLogger("core.compile")
	defer logging.LogOperationStart(logger, "compile")()

	opts = withDefaults(opts)
	logger.Info().
		Str("input", opts.InputPath).
		Str("output", opts.OutputPath).
		Bool("dryRun", opts.DryRun).
		Msg("Starting compilation")

	result, err := load(opts)
	if err != nil {
		return nil, err
	}

	out, err := emitter.Emit(result.Document)
	if err != nil {
		return nil, err
	}
	result.Output = out

	outPath, err := paths.Normalize(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	result.OutputPath = outPath

	if opts.DryRun {
		logger.Info().Int("bytes", len(out)).Msg("Dry run, output not written")
		return result, nil
	}

	if err := opts.FileSystem.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory for %s", outPath).
			WithDetail("path", outPath)
	}
	if err := opts.FileSystem.WriteFile(outPath, out, opts.FileMode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outPath).
			WithDetail("path", outPath)
	}
	result.Written = true

	logger.Info().
		Str("output", outPath).
		Int("records", result.Document.Len()).
		Msg("Document written")
	return result, nil
}

func withDefaults(opts CompileOptions) CompileOptions {
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputPath
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	return opts
}

// load reads, decodes and parses the input file
func load(opts CompileOptions) (*CompileResult, error) {
	if opts.InputPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no input file given")
	}

	raw, err := opts.FileSystem.ReadFile(opts.InputPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "input file %s does not exist", opts.InputPath).
				WithDetail("path", opts.InputPath)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", opts.InputPath).
			WithDetail("path", opts.InputPath)
	}

	text, enc, err := charset.Decode(raw, opts.Encodings...)
	if err != nil {
		return nil, err
	}

	p := parser.New()
	doc, err := p.Parse(text)
	if err != nil {
		return nil, err
	}

	return &CompileResult{
		InputPath: opts.InputPath,
		Encoding:  enc.Name,
		Document:  doc,
		Constants: p.Env().Len(),
	}, nil
}
