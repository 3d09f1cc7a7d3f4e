// Package unit is a small test-execution engine for resource-constrained
// tools. Test bodies are plain functions organized into cases, groups and
// modules; assertions either pass silently or abort the running case with a
// diagnostic; finished runs are aggregated and handed to the report package
// for rendering.
//
// Registration and execution are strictly single-threaded: construct the
// entities, append the top-level ones to a Registry, execute them with a
// Runner, then render. All containers are bounded by the Max* capacities,
// and exceeding a capacity is a setup defect, never a silent truncation.
package unit

// Version identifies the framework build embedded in reports.
const Version = "0.4.0"

// Container capacities. Test trees are bounded so a runner's memory use is
// known up front; exceeding a capacity fails construction loudly.
const (
	// MaxGroupCases bounds the number of cases per group.
	MaxGroupCases = 256
	// MaxModuleGroups bounds the number of groups per module.
	MaxModuleGroups = 128
	// MaxRootItems bounds the number of top-level entities per registry.
	MaxRootItems = 32
	// MaxMessageLen bounds a case's diagnostic message, in bytes.
	MaxMessageLen = 256
)
