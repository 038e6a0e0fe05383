package classify

// MoodGroups are clusters of semantically related moods treated as mutually
// compatible for playlist filtering. A label may belong to more than one
// group (mellow bridges the calm and sad clusters).
var MoodGroups = [][]Label{
	{MoodDance, MoodPeppy, MoodEnergetic, MoodParty},
	{MoodRomantic, MoodMelodic, MoodCalm, MoodMellow},
	{MoodMelancholic, MoodSad, MoodMellow},
	{MoodDevotional, MoodSpiritual},
}

// MoodCompatibility scores how well two mood labels match: 1.0 for an exact
// match, partial for membership in a shared mood group, 0 otherwise.
func MoodCompatibility(a, b Label, partial float64) float64 {
	if a == b {
		return 1.0
	}
	for _, group := range MoodGroups {
		inA, inB := false, false
		for _, m := range group {
			if m == a {
				inA = true
			}
			if m == b {
				inB = true
			}
		}
		if inA && inB {
			return partial
		}
	}
	return 0
}
