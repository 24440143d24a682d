// Package integrity provides health checks over the country data pipeline.
//
// Unlike the 'countryinfo' package which builds and serves the records,
// this package validates the inputs and outputs of the build.
//
// # Checks Provided
//
//   - Source: Verifies that every geonames table exists and carries the columns the row models read.
//   - Artifacts: Verifies that both artifacts are present and that every alias resolves to a record.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/source : Runs the source schema check.
//   - GET /integrity/artifacts : Runs the artifact check.
package integrity
