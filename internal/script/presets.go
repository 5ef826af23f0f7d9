package script

import "sort"

var Presets = map[string]*Script{
	"reference": {
		Name:        "reference",
		Description: "insert, append and remove on a capacity-1 array",
		Capacity:    1,
		Steps: []Step{
			{Op: "insert", Value: "STRING1", Index: 0},
			{Op: "append", Value: "STRING4"},
			{Op: "insert", Value: "STRING2", Index: 0},
			{Op: "insert", Value: "STRING3", Index: 1},
			{Op: "print"},
			{Op: "remove", Value: "STRING3"},
			{Op: "print"},
		},
	},
	"growth": {
		Name:        "growth",
		Description: "append past several doublings",
		Capacity:    1,
		Steps: []Step{
			{Op: "append", Value: "a"},
			{Op: "append", Value: "b"},
			{Op: "append", Value: "c"},
			{Op: "append", Value: "d"},
			{Op: "append", Value: "e"},
			{Op: "append", Value: "f"},
			{Op: "append", Value: "g"},
			{Op: "append", Value: "h"},
			{Op: "append", Value: "i"},
			{Op: "print"},
		},
	},
	"duplicates": {
		Name:        "duplicates",
		Description: "remove takes the first of equal values only",
		Capacity:    2,
		Steps: []Step{
			{Op: "append", Value: "a"},
			{Op: "append", Value: "b"},
			{Op: "append", Value: "a"},
			{Op: "print"},
			{Op: "remove", Value: "a"},
			{Op: "print"},
			{Op: "read", Index: 1},
			{Op: "remove", Value: "z"},
			{Op: "read", Index: 5},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Script {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *s
	c.Steps = append([]Step(nil), s.Steps...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
