// Package core contains the business logic for the Brochure API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ScrapedDocument, MergedLocationData, SearchHit, ...)
// - config: Fusion tunables (categories, thresholds, caps, selector profiles)
// - fusion: The multi-source merge engine (paragraphs, attractions, orchestration)
// - ranking: Search hit scoring and ordering
// - images: Image relevance scoring, diverse selection and bucketing
// - search: Source discovery over the search provider
// - services: Clients for the external collaborators (scraper, analyzer, classifier, colors, theme)
// - errors: Custom error types for graceful degradation
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, collaborators)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in the merge engine
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Fusing identical input always produces identical output
//
// # Usage Example
//
//	import (
//	    coreconfig "brochure-app-api/core/config"
//	    "brochure-app-api/core/fusion"
//	    "brochure-app-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := fusion.NewService(deps, coreconfig.DefaultFusionConfig())
//	merged := svc.Fuse(docs, "Kyoto")
package core
