// Package di contains dependency injection tokens for the profit context.
package di

import (
	"github.com/goblinomics/craftprofit/business/profit/app"
	"github.com/goblinomics/craftprofit/internal/di"
)

// Public service tokens - exposed to the CLI and HTTP entry points
var (
	Analyzer = di.NewToken[*app.Analyzer]("profit.Analyzer")
)

// GetAnalyzer resolves the analyzer.
func GetAnalyzer(sr di.ServiceRegistry) *app.Analyzer {
	return di.Resolve(sr, Analyzer)
}
