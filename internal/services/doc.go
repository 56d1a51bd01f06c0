// Package services contains the business logic layer between the HTTP
// transport and the analysis engine. Services own dataset loading, engine
// construction, and report caching; handlers stay thin.
package services
