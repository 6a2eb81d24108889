package ml

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// Loader produces the trained classifier for a model path.
type Loader func(ctx context.Context, path string) (port.Classifier, error)

// Option configures a Provider.
type Option func(*Provider)

// WithLoader replaces the artifact loader.
func WithLoader(l Loader) Option {
	return func(p *Provider) {
		p.loader = l
	}
}

// Provider owns the process-wide classifier. The first caller triggers a
// single load; concurrent callers block until it completes. A failed load
// selects the fallback classifier for the life of the process.
type Provider struct {
	loadErr    error
	classifier port.Classifier
	loader     Loader
	logger     *slog.Logger
	path       string
	once       sync.Once
	ready      atomic.Bool
}

// NewProvider creates a provider for the artifact at path. Nothing is loaded
// until Classifier or WarmUp is called.
func NewProvider(path string, logger *slog.Logger, opts ...Option) *Provider {
	p := &Provider{
		path:   path,
		logger: logger,
		loader: LoadClassifier,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Classifier returns the loaded classifier, loading it on first use.
func (p *Provider) Classifier(ctx context.Context) port.Classifier {
	p.once.Do(func() {
		p.load(context.WithoutCancel(ctx))
	})
	return p.classifier
}

// WarmUp loads the classifier eagerly and reports which variant was selected.
func (p *Provider) WarmUp(ctx context.Context) port.ClassifierKind {
	return p.Classifier(ctx).Kind()
}

// Kind reports the selected variant. The boolean is false until loading finished.
func (p *Provider) Kind() (port.ClassifierKind, bool) {
	if !p.ready.Load() {
		return "", false
	}
	return p.classifier.Kind(), true
}

// LoadErr returns the error that caused the fallback to be selected, if any.
func (p *Provider) LoadErr() error {
	if !p.ready.Load() {
		return nil
	}
	return p.loadErr
}

func (p *Provider) load(ctx context.Context) {
	defer p.ready.Store(true)
	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "model loader panicked, serving fallback predictions",
				slog.String("path", p.path),
				"panic", r,
			)
			p.loadErr = fmt.Errorf("loading model %s: %v", p.path, r)
			p.classifier = NewFallbackClassifier(p.logger)
		}
	}()

	clf, err := p.loader(ctx, p.path)
	if err != nil {
		p.logger.ErrorContext(ctx, "model artifact unavailable, serving fallback predictions",
			slog.String("path", p.path),
			"error", err,
		)
		p.loadErr = err
		p.classifier = NewFallbackClassifier(p.logger)
		return
	}

	p.logger.InfoContext(ctx, "classifier loaded",
		slog.String("path", p.path),
		slog.String("kind", string(clf.Kind())),
	)
	p.classifier = clf
}
