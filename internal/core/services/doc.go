// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The unified search pipeline is split by stage: query normalization,
// the domain registry, fan-out dispatch, result normalization, fuzzy
// filtering, ranking, suggestions and relationship discovery.
package services
