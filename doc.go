/*
Package bikeshareinsights serves aggregate analytics over bike-share trip
records and real-time station status.

The package wires the trips and stations engines to an HTTP API: a Dataset
snapshot store holds the most recently loaded trip records with per-month
memoized statistics, a StationStore holds the latest station poll, and a
Refresher re-runs both fetch paths on fixed intervals (last write wins).
*/
package bikeshareinsights
