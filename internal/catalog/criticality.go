package catalog

const DefaultCriticality = 2

var criticalityLabels = map[int]string{
	1: "Low",
	2: "Medium",
	3: "High",
}

// CriticalityLabel maps levels 1/2/3 to Low/Medium/High. Unmapped values
// render as the level-2 default.
func CriticalityLabel(level int) string {
	if label, ok := criticalityLabels[level]; ok {
		return label
	}
	return criticalityLabels[DefaultCriticality]
}

// NormalizeCriticality clamps an unknown or missing level to the default.
func NormalizeCriticality(level int) int {
	if _, ok := criticalityLabels[level]; ok {
		return level
	}
	return DefaultCriticality
}
