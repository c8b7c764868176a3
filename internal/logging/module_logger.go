package logging

import (
	"context"

	"github.com/goliatone/go-sitenav/pkg/interfaces"
)

const (
	rootModule       = "sitenav"
	domainsModule    = "sitenav.domains"
	pagesModule      = "sitenav.pages"
	hierarchyModule  = "sitenav.hierarchy"
	navigationModule = "sitenav.navigation"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// DomainsLogger returns the logger namespace reserved for the domain service.
func DomainsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, domainsModule)
}

// PagesLogger returns the logger namespace reserved for the page service.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// HierarchyLogger returns the logger namespace reserved for tree building.
func HierarchyLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, hierarchyModule)
}

// NavigationLogger returns the logger namespace reserved for read-path resolution.
func NavigationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, navigationModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
