package globalclass

import (
	"context"
	"fmt"
	"go/ast"
	"io"
	"os"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/globalclass/internal/config"
	"github.com/sirkon/globalclass/internal/declfilter"
	"github.com/sirkon/globalclass/internal/engine"
	"github.com/sirkon/globalclass/internal/gosym"
	"github.com/sirkon/globalclass/internal/report"
)

const doc = `globalclass checks classes opting into the host's global class registry

A class opts in with a blank marker field:

	type Player struct {
		_ godot.GlobalClass ` + "`icon:\"res://player.svg\"`" + `
		godot.Node
	}

Such a class must not be generic, must derive from the root object type,
must not be a tool class and its immediate parent must be either the root
type or a global class itself.`

// Analyzer is the main entry point for the linter. It is configured with flags.
var Analyzer = newFlagAnalyzer()

// Result is the analyzer result: diagnostics of the package ordered by position.
type Result = []report.Diagnostic

// Option customizes an analyzer built with New.
type Option func(*runner)

// WithLogger sets a logger for debug traces.
func WithLogger(log *zap.Logger) Option {
	return func(r *runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithSummary prints a human-readable summary of each package's diagnostics to w.
func WithSummary(w io.Writer) Option {
	return func(r *runner) {
		r.summary = w
	}
}

// New creates an analyzer with an explicit configuration.
func New(cfg config.Config, opts ...Option) (*analysis.Analyzer, error) {
	r := &runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.setup(cfg); err != nil {
		return nil, err
	}

	return analyzer(r), nil
}

func newFlagAnalyzer() *analysis.Analyzer {
	var (
		configPath string
		hostPkg    string
		debug      bool
	)

	r := &runner{log: zap.NewNop()}
	r.prepare = func() error {
		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		}
		if hostPkg != "" {
			cfg.HostPackage = hostPkg
		}

		if debug {
			log, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("set up debug logger: %w", err)
			}
			r.log = log
			r.summary = os.Stderr
		}

		return r.setup(cfg)
	}

	a := analyzer(r)
	a.Flags.StringVar(&configPath, "config", "", "path to a YAML file with well-known host identities")
	a.Flags.StringVar(&hostPkg, "host", "", "package path of the host binding, overrides host_package of the config")
	a.Flags.BoolVar(&debug, "debug", false, "log skipped declarations and print per-package summaries to stderr")

	return a
}

func analyzer(r *runner) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:       "globalclass",
		Doc:        doc,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		Run:        r.run,
		ResultType: reflect.TypeFor[Result](),
	}
}

// runner holds the checker shared by all passes of one analyzer.
type runner struct {
	once    sync.Once
	prepare func() error
	err     error

	checker *engine.Checker
	jobs    int
	log     *zap.Logger
	summary io.Writer
}

func (r *runner) setup(cfg config.Config) error {
	checker, err := cfg.Checker()
	if err != nil {
		return fmt.Errorf("set up checker: %w", err)
	}

	r.checker = checker
	r.jobs = cfg.Jobs
	r.log.Debug(
		"checker ready",
		zap.Stringer("root", checker.Table().Root()),
		zap.Int("markers", len(checker.Table().Markers())),
		zap.Int("jobs", cfg.Jobs),
	)
	return nil
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	r.once.Do(func() {
		if r.prepare != nil {
			r.err = r.prepare()
		}
	})
	if r.err != nil {
		return nil, r.err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	log := r.log.With(zap.String("package", pass.Pkg.Path()))

	nodeFilter := []ast.Node{
		(*ast.TypeSpec)(nil),
	}

	var decls []engine.Declaration
	for cur := range pector.Root().Preorder(nodeFilter...) {
		spec := cur.Node().(*ast.TypeSpec) // No need to assert check since we only get type specs.

		tn, ok := declfilter.Accept(cur, pass.Fset, pass.TypesInfo)
		if !ok {
			log.Debug("skip declaration", zap.String("type", spec.Name.Name))
			continue
		}

		class, ok := gosym.FromTypeName(tn)
		if !ok {
			continue
		}

		decls = append(decls, engine.Declaration{
			Symbol: class,
			Pos:    spec.Name.Pos(),
			End:    spec.Name.End(),
		})
	}

	diags, err := r.checker.CheckAll(context.Background(), decls, r.jobs)
	if err != nil {
		return nil, fmt.Errorf("check declarations of %s: %w", pass.Pkg.Path(), err)
	}

	for _, d := range diags {
		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			End:      d.End,
			Category: d.Rule.Code(),
			Message:  d.Message,
		})
	}

	if r.summary != nil {
		var collector report.Collector
		collector.Add(diags...)
		collector.PrintSummary(r.summary, pass.Fset)
	}

	log.Debug(
		"package checked",
		zap.Int("declarations", len(decls)),
		zap.Int("diagnostics", len(diags)),
	)

	return diags, nil
}
