// Package engine runs the analysis pipeline: discovery, parallel per-file
// extraction, then single-threaded matching, filtering, sorting and
// aggregation. All cross-file determinism is enforced in the aggregation
// phase, so results are independent of worker completion order.
package engine

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mvp-joe/pymap/internal/analysis"
	"github.com/mvp-joe/pymap/internal/config"
	"github.com/mvp-joe/pymap/internal/discovery"
	"github.com/mvp-joe/pymap/internal/pattern"
	"github.com/mvp-joe/pymap/internal/report"
)

// Options control a single analysis run.
type Options struct {
	Patterns     []string
	Visibility   pattern.Visibility
	Alphabetical bool
}

// ProgressReporter receives parse-phase progress events. Implementations
// must tolerate concurrent OnFileParsed calls.
type ProgressReporter interface {
	OnParseStart(totalFiles int)
	OnFileParsed(path string)
	OnParseDone()
}

// NoProgress is a ProgressReporter that does nothing.
type NoProgress struct{}

func (NoProgress) OnParseStart(int)   {}
func (NoProgress) OnFileParsed(string) {}
func (NoProgress) OnParseDone()       {}

// Engine runs analysis over target paths.
type Engine struct {
	collector *discovery.Collector
	workers   int
	log       zerolog.Logger
	progress  ProgressReporter
}

// New builds an engine from configuration.
func New(cfg *config.Config, log zerolog.Logger, progress ProgressReporter) (*Engine, error) {
	collector, err := discovery.NewCollector(cfg.Ignore)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = NoProgress{}
	}
	return &Engine{
		collector: collector,
		workers:   cfg.Workers,
		log:       log,
		progress:  progress,
	}, nil
}

// Functions reports top-level functions, filtered by patterns and
// visibility, ordered per Options.
func (e *Engine) Functions(ctx context.Context, targets []string, opts Options) (*report.FunctionsReport, error) {
	full, err := e.analyze(ctx, targets, opts, facetFunctions)
	if err != nil {
		return nil, err
	}
	return full.FunctionsView(), nil
}

// Classes reports classes with their fields and methods. Patterns match
// class names; visibility filters members but never removes a class.
func (e *Engine) Classes(ctx context.Context, targets []string, opts Options) (*report.ClassesReport, error) {
	full, err := e.analyze(ctx, targets, opts, facetClasses)
	if err != nil {
		return nil, err
	}
	return full.ClassesView(), nil
}

// Enums reports enum-like classes and their members.
func (e *Engine) Enums(ctx context.Context, targets []string, opts Options) (*report.EnumsReport, error) {
	full, err := e.analyze(ctx, targets, opts, facetEnums)
	if err != nil {
		return nil, err
	}
	return full.EnumsView(), nil
}

// Dump reports functions, classes and enums per file. Patterns match
// every top-level symbol name.
func (e *Engine) Dump(ctx context.Context, targets []string, opts Options) (*report.DumpReport, error) {
	full, err := e.analyze(ctx, targets, opts, facetAll)
	if err != nil {
		return nil, err
	}
	return full.DumpView(), nil
}

// Modules reports the package/module tree, filtered level by level.
func (e *Engine) Modules(ctx context.Context, targets []string, opts Options) (*report.ModulesReport, error) {
	paths, err := e.collector.Collect(targets)
	if err != nil {
		return nil, err
	}
	tree := report.BuildModuleTree(paths)
	return &report.ModulesReport{Modules: report.FilterModuleTree(tree, opts.Patterns)}, nil
}

type facet int

const (
	facetFunctions facet = iota
	facetClasses
	facetEnums
	facetAll
)

func (e *Engine) analyze(ctx context.Context, targets []string, opts Options, f facet) (*report.Report, error) {
	reports, paths, err := e.extractAll(ctx, targets)
	if err != nil {
		return nil, err
	}

	applyPatterns(reports, opts.Patterns, f)
	applyVisibility(reports, opts.Visibility, f)

	mode := report.FileOrder
	if opts.Alphabetical {
		mode = report.Alphabetical
	}
	return report.Assemble(reports, paths, mode), nil
}

// extractAll parses and extracts every discovered file in a bounded
// errgroup. Extraction is pure and file-local; results land in a slice
// indexed by discovery order, so no locking is needed. Unreadable or
// syntactically broken files are logged once and skipped whole.
func (e *Engine) extractAll(ctx context.Context, targets []string) ([]analysis.FileReport, []string, error) {
	paths, err := e.collector.Collect(targets)
	if err != nil {
		return nil, nil, err
	}

	results := make([]*analysis.FileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	e.progress.OnParseStart(len(paths))
	for i, path := range paths {
		g.Go(func() error {
			defer e.progress.OnFileParsed(path)

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			source, err := os.ReadFile(path)
			if err != nil {
				e.log.Warn().Str("file", path).Err(err).Msg("skipping unreadable file")
				return nil
			}
			tree, err := analysis.Parse(source)
			if err != nil {
				e.log.Warn().Str("file", path).Err(err).Msg("skipping file with syntax errors")
				return nil
			}
			fr := analysis.Extract(tree, path)
			results[i] = &fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	e.progress.OnParseDone()

	reports := make([]analysis.FileReport, 0, len(results))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports, paths, nil
}

// applyPatterns runs cascading matching over the candidate names of the
// facet across all files, then drops the symbols that did not reach the
// winning tier.
func applyPatterns(reports []analysis.FileReport, patterns []string, f facet) {
	if len(patterns) == 0 {
		return
	}

	var names []string
	for i := range reports {
		if f == facetFunctions || f == facetAll {
			for _, fn := range reports[i].Functions {
				names = append(names, fn.Name)
			}
		}
		if f == facetClasses || f == facetAll {
			for _, cls := range reports[i].Classes {
				names = append(names, cls.Name)
			}
		}
		if f == facetEnums || f == facetAll {
			for _, en := range reports[i].Enums {
				names = append(names, en.Name)
			}
		}
	}
	keep := pattern.Filter(names, patterns)

	for i := range reports {
		if f == facetFunctions || f == facetAll {
			kept := reports[i].Functions[:0]
			for _, fn := range reports[i].Functions {
				if _, ok := keep[fn.Name]; ok {
					kept = append(kept, fn)
				}
			}
			reports[i].Functions = kept
		}
		if f == facetClasses || f == facetAll {
			kept := reports[i].Classes[:0]
			for _, cls := range reports[i].Classes {
				if _, ok := keep[cls.Name]; ok {
					kept = append(kept, cls)
				}
			}
			reports[i].Classes = kept
		}
		if f == facetEnums || f == facetAll {
			kept := reports[i].Enums[:0]
			for _, en := range reports[i].Enums {
				if _, ok := keep[en.Name]; ok {
					kept = append(kept, en)
				}
			}
			reports[i].Enums = kept
		}
	}
}

// applyVisibility filters top-level function names and, within each class,
// field and method names. Classes themselves are never filtered: a class
// whose members are all removed stays with empty mappings.
func applyVisibility(reports []analysis.FileReport, vis pattern.Visibility, f facet) {
	if vis == pattern.ShowAll {
		return
	}

	for i := range reports {
		if f == facetFunctions || f == facetAll {
			kept := reports[i].Functions[:0]
			for _, fn := range reports[i].Functions {
				if vis.Keep(fn.Name) {
					kept = append(kept, fn)
				}
			}
			reports[i].Functions = kept
		}
		if f == facetClasses || f == facetAll {
			for c := range reports[i].Classes {
				cls := &reports[i].Classes[c]

				fields := cls.Fields[:0]
				for _, fld := range cls.Fields {
					if vis.Keep(fld.Name) {
						fields = append(fields, fld)
					}
				}
				cls.Fields = fields

				methods := cls.Methods[:0]
				for _, m := range cls.Methods {
					if vis.Keep(m.Name) {
						methods = append(methods, m)
					}
				}
				cls.Methods = methods
			}
		}
	}
}
