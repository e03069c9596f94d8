package transit

type TransportMode string

const (
	TransportModeTram    TransportMode = "tram"
	TransportModeBus     TransportMode = "bus"
	TransportModeNavette TransportMode = "navette"
)

// ModeForLine classifies a line identifier by its shape. Tram lines on the
// Naolib network are the single digits 1-3, navettes (river shuttles and
// airport link) carry an N prefix, everything else is a bus.
func ModeForLine(line string) TransportMode {
	if len(line) == 1 && line[0] >= '1' && line[0] <= '3' {
		return TransportModeTram
	}

	if len(line) > 0 && (line[0] == 'N' || line[0] == 'n') {
		return TransportModeNavette
	}

	return TransportModeBus
}

var modeIcons = map[TransportMode]string{
	TransportModeTram:    IconTram,
	TransportModeBus:     IconBus,
	TransportModeNavette: IconNavette,
}

// IconForMode maps a transit mode to its display icon, falling back to the
// bus icon for anything unclassified.
func IconForMode(mode TransportMode) string {
	if icon, exists := modeIcons[mode]; exists {
		return icon
	}

	return IconBus
}

// IconForLine is the composition used by the formatter.
func IconForLine(line string) string {
	return IconForMode(ModeForLine(line))
}
