package workload

import "strings"

// MuscleGroup is a canonical major muscle group with a weekly set range.
type MuscleGroup int

const (
	GroupUnknown MuscleGroup = iota
	GroupChest
	GroupBack
	GroupShoulders
	GroupBiceps
	GroupTriceps
	GroupQuadriceps
	GroupHamstrings
	GroupGlutes
	GroupCalves
	GroupAbs
)

// SetRange is an inclusive weekly effective set range.
type SetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type groupInfo struct {
	name    string
	aliases []string // english name first, then the arabic one
	weekly  SetRange
}

var groups = map[MuscleGroup]groupInfo{
	GroupChest:      {name: "Chest", aliases: []string{"chest", "الصدر"}, weekly: SetRange{10, 20}},
	GroupBack:       {name: "Back", aliases: []string{"back", "الظهر"}, weekly: SetRange{10, 20}},
	GroupShoulders:  {name: "Shoulders", aliases: []string{"shoulders", "الأكتاف"}, weekly: SetRange{8, 16}},
	GroupBiceps:     {name: "Biceps", aliases: []string{"biceps", "البايسبس"}, weekly: SetRange{8, 14}},
	GroupTriceps:    {name: "Triceps", aliases: []string{"triceps", "الترايسبس"}, weekly: SetRange{6, 14}},
	GroupQuadriceps: {name: "Quadriceps", aliases: []string{"quadriceps", "الفخذ الأمامي"}, weekly: SetRange{10, 20}},
	GroupHamstrings: {name: "Hamstrings", aliases: []string{"hamstrings", "الفخذ الخلفي"}, weekly: SetRange{8, 16}},
	GroupGlutes:     {name: "Glutes", aliases: []string{"glutes", "الألوية"}, weekly: SetRange{8, 16}},
	GroupCalves:     {name: "Calves", aliases: []string{"calves", "السمانة"}, weekly: SetRange{8, 16}},
	GroupAbs:        {name: "Abs", aliases: []string{"abs", "البطن"}, weekly: SetRange{6, 16}},
}

// referenceGroups is the order used whenever groups are listed.
var referenceGroups = []MuscleGroup{
	GroupChest, GroupBack, GroupShoulders, GroupBiceps, GroupTriceps,
	GroupQuadriceps, GroupHamstrings, GroupGlutes, GroupCalves, GroupAbs,
}

// GroupRange is the public view of one reference group.
type GroupRange struct {
	Group   string   `json:"group"`
	Aliases []string `json:"aliases"`
	Weekly  SetRange `json:"weekly"`
}

// ReferenceRanges lists every reference group with its weekly set range, in
// the canonical group order.
func ReferenceRanges() []GroupRange {
	out := make([]GroupRange, 0, len(referenceGroups))
	for _, g := range referenceGroups {
		info := groups[g]
		out = append(out, GroupRange{
			Group:   info.name,
			Aliases: append([]string(nil), info.aliases...),
			Weekly:  info.weekly,
		})
	}
	return out
}

// aliasIndex maps every normalized display name to its group.
var aliasIndex = func() map[string]MuscleGroup {
	idx := make(map[string]MuscleGroup)
	for g, info := range groups {
		for _, a := range info.aliases {
			idx[normalizeName(a)] = g
		}
	}
	return idx
}()

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (g MuscleGroup) String() string {
	if info, ok := groups[g]; ok {
		return info.name
	}
	return "Unknown"
}

// WeeklyRange returns the optimal weekly effective set range of the group.
func (g MuscleGroup) WeeklyRange() (SetRange, bool) {
	info, ok := groups[g]
	if !ok {
		return SetRange{}, false
	}
	return info.weekly, true
}

// ResolveGroup maps a muscle display name (english or arabic) to its group.
// Only whole names match; "Upper Chest" is not Chest here.
func ResolveGroup(muscleName string) MuscleGroup {
	return aliasIndex[normalizeName(muscleName)]
}

// MatchesGroup reports whether the muscle name contains any alias of the group,
// case insensitive. Used for the opposing pair heuristics.
func MatchesGroup(muscleName string, g MuscleGroup) bool {
	info, ok := groups[g]
	if !ok {
		return false
	}
	name := strings.ToLower(muscleName)
	for _, a := range info.aliases {
		if strings.Contains(name, a) {
			return true
		}
	}
	return false
}
