package sitenav

import (
	"strings"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitenav/internal/countries"
	"github.com/goliatone/go-sitenav/internal/domains"
	"github.com/goliatone/go-sitenav/internal/hierarchy"
	"github.com/goliatone/go-sitenav/internal/logging"
	"github.com/goliatone/go-sitenav/internal/logging/gologger"
	"github.com/goliatone/go-sitenav/internal/navigation"
	"github.com/goliatone/go-sitenav/internal/pages"
	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

// DomainService exports the domain service contract.
type DomainService = domains.Service

// PageService exports the page service contract.
type PageService = pages.Service

// NavigationService exports the navigation read service contract.
type NavigationService = navigation.Service

// Domain exports the domain record.
type Domain = domains.Domain

// Category exports the domain grouping record.
type Category = domains.Category

// Page exports the page record.
type Page = pages.Page

// SectionConfig exports the section layout configuration.
type SectionConfig = pages.SectionConfig

// PageNode exports one page placed in its domain tree.
type PageNode = hierarchy.PageNode

// URLResolver exports the URL formatting contract.
type URLResolver = hierarchy.URLResolver

// Crumb exports one breadcrumb trail entry.
type Crumb = navigation.Crumb

// Trail exports an ordered breadcrumb trail.
type Trail = navigation.Trail

// CollapsedTrail exports the bounded breadcrumb display form.
type CollapsedTrail = navigation.CollapsedTrail

// Section exports a resolved section of a page's children.
type Section = navigation.Section

// ResolvedPage exports the navigation read result.
type ResolvedPage = navigation.ResolvedPage

// NavPath exports a parsed absolute navigation path.
type NavPath = navigation.NavPath

// CountryCode exports the viewer country code type.
type CountryCode = countries.Code

// CountryAll is the sentinel meaning "visible everywhere".
const CountryAll = countries.All

// Engine is the top level runtime facade wiring storage, services, and the
// navigation read path together.
type Engine struct {
	cfg      Config
	provider interfaces.LoggerProvider

	domainService domains.Service
	pageService   pages.Service
	navService    navigation.Service
}

// Option overrides engine wiring.
type Option func(*engineDeps)

type engineDeps struct {
	db            *bun.DB
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	provider      interfaces.LoggerProvider
	urls          hierarchy.URLResolver
}

// WithDB supplies the database handle for sqlite/postgres storage drivers.
func WithDB(db *bun.DB) Option {
	return func(d *engineDeps) {
		d.db = db
	}
}

// WithCache wraps the database-backed repositories with read-through caching.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(d *engineDeps) {
		d.cacheService = service
		d.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *engineDeps) {
		if provider != nil {
			d.provider = provider
		}
	}
}

// WithURLResolver overrides the canonical URL formatter used by the read path.
func WithURLResolver(resolver URLResolver) Option {
	return func(d *engineDeps) {
		if resolver != nil {
			d.urls = resolver
		}
	}
}

// New constructs an engine from the provided configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &engineDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	if deps.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		deps.provider = provider
	}

	var (
		domainRepo   domains.DomainRepository
		categoryRepo domains.CategoryRepository
		pageRepo     pages.PageRepository
		pageCounter  domains.PageCounter
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case "", StorageDriverMemory:
		memDomains := domains.NewMemoryDomainRepository()
		memCategories := domains.NewMemoryCategoryRepository()
		memPages := pages.NewMemoryPageRepository()
		domainRepo = memDomains
		categoryRepo = memCategories
		pageRepo = memPages
		pageCounter = memPages
	case StorageDriverSQLite, StorageDriverPostgres:
		if deps.db == nil {
			return nil, ErrDatabaseRequired
		}
		bunDomains := domains.NewBunDomainRepositoryWithCache(deps.db, deps.cacheService, deps.keySerializer)
		bunPages := pages.NewBunPageRepositoryWithCache(deps.db, deps.cacheService, deps.keySerializer)
		domainRepo = bunDomains
		categoryRepo = bunDomains.Categories()
		pageRepo = bunPages
		pageCounter = bunPages
	default:
		return nil, ErrStorageDriverUnknown
	}

	pageService := pages.NewService(pageRepo, domainRepo,
		pages.WithLogger(logging.PagesLogger(deps.provider)),
	)
	domainService := domains.NewService(domainRepo, categoryRepo,
		domains.WithRootMaterializer(pageService),
		domains.WithPageCounter(pageCounter),
		domains.WithLogger(logging.DomainsLogger(deps.provider)),
	)

	navOpts := []navigation.ServiceOption{
		navigation.WithLogger(logging.NavigationLogger(deps.provider)),
	}
	if cfg.Navigation.BreadcrumbThreshold >= 2 {
		navOpts = append(navOpts, navigation.WithBreadcrumbThreshold(cfg.Navigation.BreadcrumbThreshold))
	}
	if cfg.Navigation.DomainsIndexLabel != "" {
		navOpts = append(navOpts, navigation.WithDomainsIndexLabel(cfg.Navigation.DomainsIndexLabel))
	}
	if deps.urls != nil {
		navOpts = append(navOpts, navigation.WithURLResolver(deps.urls))
	}
	navService := navigation.NewService(domainRepo, pageRepo, navOpts...)

	return &Engine{
		cfg:           cfg,
		provider:      deps.provider,
		domainService: domainService,
		pageService:   pageService,
		navService:    navService,
	}, nil
}

// Domains returns the configured domain service.
func (e *Engine) Domains() DomainService {
	return e.domainService
}

// Pages returns the configured page service.
func (e *Engine) Pages() PageService {
	return e.pageService
}

// Navigation returns the configured navigation read service.
func (e *Engine) Navigation() NavigationService {
	return e.navService
}

// ParsePath parses an absolute "/domain/{slug}/..." navigation path.
func ParsePath(path string) (NavPath, error) {
	return navigation.ParseNavPath(path)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", LoggingProviderNoop:
		return nil, nil
	case LoggingProviderGoLogger:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}
