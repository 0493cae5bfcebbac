package entities

import (
	"fmt"
	"strings"
	"time"
)

// Stat identifies one of the three core attributes
type Stat int

const (
	Str Stat = iota
	Dex
	Int

	// StatCount is the number of core attributes
	StatCount = int(Int) + 1
)

// StatFloor is the lowest value atrophy may leave a stat at
const StatFloor = 10

var statNames = [StatCount]string{"str", "dex", "int"}

func (s Stat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Valid reports whether s is Str, Dex or Int
func (s Stat) Valid() bool {
	return s >= 0 && int(s) < StatCount
}

// ParseStat resolves "str", "dex" or "int"
func ParseStat(s string) (Stat, error) {
	for i, name := range statNames {
		if strings.EqualFold(name, s) {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", s)
}

// Attributes holds an entity's raw stats, their locks and gain cooldowns
type Attributes struct {
	Values   [StatCount]int       `json:"values"`
	Locks    [StatCount]Lock      `json:"locks"`
	LastGain [StatCount]time.Time `json:"last_gain"`
	Cap      int                  `json:"cap"`
}

// NewAttributes creates attributes with every lock Up. Values below
// StatFloor are raised to it.
func NewAttributes(str, dex, intel, statCap int) *Attributes {
	return &Attributes{
		Values: [StatCount]int{max(str, StatFloor), max(dex, StatFloor), max(intel, StatFloor)},
		Cap:    statCap,
	}
}

// Get returns the raw value of a stat
func (a *Attributes) Get(s Stat) int {
	return a.Values[mustStat(s)]
}

// Set stores the raw value of a stat
func (a *Attributes) Set(s Stat, v int) {
	a.Values[mustStat(s)] = v
}

// Lock returns the lock of a stat
func (a *Attributes) Lock(s Stat) Lock {
	return a.Locks[mustStat(s)]
}

// SetLock changes the lock of a stat
func (a *Attributes) SetLock(s Stat, l Lock) {
	a.Locks[mustStat(s)] = l
}

// RawTotal is Str+Dex+Int without item bonuses
func (a *Attributes) RawTotal() int {
	return a.Values[Str] + a.Values[Dex] + a.Values[Int]
}

func mustStat(s Stat) Stat {
	if !s.Valid() {
		panic(fmt.Sprintf("entities: unknown stat %d", int(s)))
	}
	return s
}
