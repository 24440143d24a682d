// Package countryinfo builds and serves the denormalized country dataset.
//
// It reads the geonames relational tables (countries, language codes,
// alternate names, admin codes, timezones), aggregates one CountryRecord per
// country and derives a lookup index from every alias of a country to its
// geo id. Both artifacts are written together and then served read-only.
//
// # Pipeline
//
//	SourceReader -> Aggregator -> (Records, LookupIndex) -> ArtifactStore -> Cache -> Country
//
//   - Aggregator: resolves neighbours, languages, continent, alternate names,
//     first-level subdivisions and timezones for one country row.
//   - Contribute: adds ISO2, ISO3, name and alternate names, lower-cased and
//     transliterated to ASCII, to the index.
//   - Builder: skips when both artifacts exist, otherwise aggregates every
//     country and commits both artifacts or nothing.
//   - Cache: holds the loaded artifacts until Rebuild or Invalidate.
//   - Country: accessors over one record that report absence for unknown aliases.
//
// # Known ambiguities
//
// Index keys are last-write-wins: an alias shared by two countries resolves to
// whichever was aggregated last. A language code matching several language
// rows resolves to the first distinct name the source returns.
//
// # Artifact Stores
//
//   - BoltStore: two buckets in a local bbolt file, replaced in one transaction.
//   - ObjectStore: countryinfo.json and countrylookup.json in an S3/MinIO bucket.
//
// # HTTP Endpoints
//
//   - GET /countries : All records keyed by geo id.
//   - GET /countries/:alias : One record.
//   - GET /countries/:alias/:field : One field (name, capital, currency, ...).
//   - POST /countries/build : Build missing artifacts (?force=true rebuilds).
package countryinfo
