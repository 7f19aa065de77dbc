package player

import "fmt"

const (
	MinHappiness = 0
	MaxHappiness = 1000

	// MinStat is the floor for every status attribute.
	MinStat = 1
)

// Stats are the six status attributes of a character.
type Stats struct {
	Energy int `json:"energy" yaml:"energy"`
	Focus  int `json:"focus" yaml:"focus"`
	Wisdom int `json:"wisdom" yaml:"wisdom"`
	Charm  int `json:"charm" yaml:"charm"`
	Luck   int `json:"luck" yaml:"luck"`
	PSP    int `json:"psp" yaml:"psp"`
}

// Effects is a set of deltas applied by events, actions and pets. Zero
// fields leave the matching attribute untouched.
type Effects struct {
	Happiness int `json:"happiness,omitempty" yaml:"happiness,omitempty"`
	Energy    int `json:"energy,omitempty" yaml:"energy,omitempty"`
	Focus     int `json:"focus,omitempty" yaml:"focus,omitempty"`
	Wisdom    int `json:"wisdom,omitempty" yaml:"wisdom,omitempty"`
	Charm     int `json:"charm,omitempty" yaml:"charm,omitempty"`
	Luck      int `json:"luck,omitempty" yaml:"luck,omitempty"`
	PSP       int `json:"psp,omitempty" yaml:"psp,omitempty"`
}

func (e Effects) IsZero() bool { return e == Effects{} }

func (e Effects) String() string {
	out := ""
	add := func(name string, v int) {
		if v == 0 {
			return
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s%+d", name, v)
	}
	add("happiness", e.Happiness)
	add("energy", e.Energy)
	add("focus", e.Focus)
	add("wisdom", e.Wisdom)
	add("charm", e.Charm)
	add("luck", e.Luck)
	add("psp", e.PSP)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp forces every attribute into [MinStat, max].
func (s Stats) Clamp(max Stats) Stats {
	return Stats{
		Energy: clamp(s.Energy, MinStat, max.Energy),
		Focus:  clamp(s.Focus, MinStat, max.Focus),
		Wisdom: clamp(s.Wisdom, MinStat, max.Wisdom),
		Charm:  clamp(s.Charm, MinStat, max.Charm),
		Luck:   clamp(s.Luck, MinStat, max.Luck),
		PSP:    clamp(s.PSP, MinStat, max.PSP),
	}
}

// Validate checks that every maximum is usable and every value is in range.
func (s Stats) Validate(max Stats) error {
	check := func(name string, v, m int) error {
		if m < MinStat {
			return fmt.Errorf("max %s must be at least %d", name, MinStat)
		}
		if v < MinStat || v > m {
			return fmt.Errorf("%s must be within [%d, %d]", name, MinStat, m)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v, m int
	}{
		{"energy", s.Energy, max.Energy},
		{"focus", s.Focus, max.Focus},
		{"wisdom", s.Wisdom, max.Wisdom},
		{"charm", s.Charm, max.Charm},
		{"luck", s.Luck, max.Luck},
		{"psp", s.PSP, max.PSP},
	} {
		if err := check(c.name, c.v, c.m); err != nil {
			return err
		}
	}
	return nil
}
