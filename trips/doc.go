/*
Package trips implements the trip-record aggregation pipeline.

Raw CSV rows (header names to string values) are normalized into typed
TripRecord values, optionally filtered to a calendar month, and reduced in a
single pass into a TripStats object: counts, duration and distance totals,
temporal distributions, and the most-traveled directed station pairs.

The package performs no rendering; its outputs are plain structs consumed by
the HTTP layer. The only I/O lives in Loader, which fetches the quarterly
CSV files.
*/
package trips
