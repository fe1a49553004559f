package models

// Icon identifiers known to the presentation layer. Division.IconName is
// validated against this set at write time; anything else is stored as
// IconFallback rather than resolved loosely at render time.
const (
	IconAppWindow    = "AppWindow"
	IconNetwork      = "Network"
	IconCpu          = "Cpu"
	IconClapperboard = "Clapperboard"
	IconGlobe        = "Globe"
	IconTrophy       = "Trophy"

	IconFallback = "FolderKanban"
)

var knownIcons = map[string]struct{}{
	IconAppWindow:    {},
	IconNetwork:      {},
	IconCpu:          {},
	IconClapperboard: {},
	IconGlobe:        {},
	IconTrophy:       {},
	IconFallback:     {},
}

// KnownIcon reports whether name is a recognized icon identifier.
func KnownIcon(name string) bool {
	_, ok := knownIcons[name]
	return ok
}

// NormalizeIcon returns name if it is a recognized icon identifier and
// IconFallback otherwise (including the empty string).
func NormalizeIcon(name string) string {
	if KnownIcon(name) {
		return name
	}
	return IconFallback
}

// IconNames returns the icon identifiers offered in admin forms, in a
// stable display order.
func IconNames() []string {
	return []string{
		IconAppWindow,
		IconNetwork,
		IconCpu,
		IconClapperboard,
		IconGlobe,
		IconTrophy,
		IconFallback,
	}
}
