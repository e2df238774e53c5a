/*
Package stations handles the real-time station status feed.

Client fetches and flattens the GeoJSON feed into Station snapshots,
Summarize reduces a snapshot into system-wide SystemStats, and NameCache
keeps a time-boxed id-to-name lookup table sourced from the same feed.
*/
package stations
