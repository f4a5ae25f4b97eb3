// Package airports maintains the registry of tracked airports and the
// AIRAC cycle calendar their diagrams are published against.
//
// # Registry
//
// Every FAA airport diagram is addressed by a five-digit chart number
// rather than the familiar three-letter code. [Registry] maps one to the
// other. A built-in registry covers the airports tracked by default;
// [LoadRegistry] reads additional or replacement entries from a TOML file:
//
//	[airports]
//	JFK = "00610"
//	BOS = "00058"
//
// # AIRAC cycles
//
// Diagram revisions follow the 28-day AIRAC calendar, 13 cycles per year,
// identified by a four-digit YYNN code such as "2602" (2026, cycle 2).
// [CycleAt] derives the cycle in effect at a given instant from the known
// start of cycle 2601 on 2025-12-26; [PreviousCycle], [NextCycle] and
// [HistoricalCycles] step along the calendar without touching the clock.
package airports
