// Package config centralizes the lookup data used during extraction, scoring,
// and comparison: controller speed tables, wireless generation markers,
// categorical rank tables, header skip patterns, and related policy lists.
// All of it is plain data so sheets with new vendors or sections can be
// supported without touching parser or scorer code.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Workbook configures sheet selection and header detection.
type Workbook struct {
	// Sheets lists worksheet names to ingest, in order. Missing sheets are
	// skipped with a warning.
	Sheets []string `toml:"sheets"`
	// Markers are the leaf-row identity labels. The leaf header row is the
	// first scanned row containing every marker.
	Markers []string `toml:"markers"`
	// MaxHeaderScanRows bounds the top-of-sheet scan for the leaf row.
	MaxHeaderScanRows int `toml:"max_header_scan_rows"`
	// MaxParentRows bounds how far above the leaf row parent labels are read.
	MaxParentRows int `toml:"max_parent_rows"`
	// MaxColumns caps how many columns are read per sheet.
	MaxColumns int `toml:"max_columns"`
	// SkipHeaderPatterns excludes boilerplate headers; a column whose path
	// contains any pattern (case-insensitively) is dropped entirely.
	SkipHeaderPatterns []string `toml:"skip_header_patterns"`
	// IdentityColumns are leaf names kept flat regardless of parents.
	IdentityColumns []string `toml:"identity_columns"`
}

// Summary names the child leaf whose value represents a collapsed section.
type Summary struct {
	// Feature is the child leaf name to pull the summary value from.
	Feature string `toml:"feature"`
	// Label is the display label shown next to the value.
	Label string `toml:"label"`
}

// GenerationMarker maps a wireless generation token to its base score.
// Markers are matched against normalized text in declaration order, so more
// specific (newer) generations must come first.
type GenerationMarker struct {
	Marker string  `toml:"marker"`
	Score  float64 `toml:"score"`
}

// VendorBonus maps a wireless chip vendor to its tie-break bonus. Vendors are
// checked in declaration order; the first whose name or alias appears wins.
type VendorBonus struct {
	Vendor  string   `toml:"vendor"`
	Aliases []string `toml:"aliases"`
	Bonus   float64  `toml:"bonus"`
}

// Tables holds the scoring and comparison lookup data.
type Tables struct {
	// ControllerSpeeds maps known controller identifiers to their speed in
	// Gbps. Matching is by normalized substring with maximal-match dedup.
	ControllerSpeeds map[string]float64 `toml:"controller_speeds"`
	// Abbreviations expands shorthand in normalized controller text before
	// matching, e.g. "killere3100" -> "e3100".
	Abbreviations map[string]string `toml:"abbreviations"`
	// WirelessGenerations are generation markers, most specific first.
	WirelessGenerations []GenerationMarker `toml:"wireless_generations"`
	// WirelessVendors are vendor bonuses in priority order.
	WirelessVendors []VendorBonus `toml:"wireless_vendors"`
	// WirelessSlotMarkers signal a bare antenna/slot provision without any
	// generation marker; such cells get WirelessSlotScore.
	WirelessSlotMarkers []string `toml:"wireless_slot_markers"`
	// WirelessSlotScore is the fixed low score for slot-only cells.
	WirelessSlotScore float64 `toml:"wireless_slot_score"`
	// VRMPremiumMarkers and VRMMidMarkers classify power-stage components
	// into tier 2 and tier 1 respectively.
	VRMPremiumMarkers []string `toml:"vrm_premium_markers"`
	VRMMidMarkers     []string `toml:"vrm_mid_markers"`
	// CategoricalRanks overrides scoring for fields whose display name
	// contains the outer key: exact text lookup first, then case-insensitive.
	CategoricalRanks map[string]map[string]float64 `toml:"categorical_ranks"`
	// IgnoreFields excludes fields from comparison highlighting entirely.
	IgnoreFields []string `toml:"ignore_fields"`
	// LowerIsBetter inverts which numeric extreme counts as best.
	LowerIsBetter []string `toml:"lower_is_better"`
	// SummaryMap maps section names to their collapsed-view summary leaf.
	SummaryMap map[string]Summary `toml:"summary_map"`
}

// Config is the full configuration for a mobospec run.
type Config struct {
	Workbook Workbook `toml:"workbook"`
	Tables   Tables   `toml:"tables"`
}

// Load reads a TOML config file, applied on top of Default(). A missing path
// returns the defaults unchanged; a missing file is an error distinguishable
// via errors.Is(err, fs.ErrNotExist).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
