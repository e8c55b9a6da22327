package app

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs which configuration keys were read at startup
// and whether their default value was used.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect writes one line per configuration key.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "[ai-studio] ", log.LstdFlags|log.Lmsgprefix)
	}
	for _, c := range r.Configs {
		if c.UsedDefault {
			logger.Printf("config: %s (default)", c.Key)
			continue
		}
		logger.Printf("config: %s", c.Key)
	}
	return nil
}
