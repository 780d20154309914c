package entity

import (
	"strings"
)

// State is a Brazilian federative unit (UF) code such as "SP".
type State string

// ibgeCodes maps each of the 27 federative units to its IBGE numeric code.
var ibgeCodes = map[State]int{
	"RO": 11, "AC": 12, "AM": 13, "RR": 14, "PA": 15, "AP": 16, "TO": 17,
	"MA": 21, "PI": 22, "CE": 23, "RN": 24, "PB": 25, "PE": 26, "AL": 27,
	"SE": 28, "BA": 29, "MG": 31, "ES": 32, "RJ": 33, "SP": 35, "PR": 41,
	"SC": 42, "RS": 43, "MS": 50, "MT": 51, "GO": 52, "DF": 53,
}

var statesByIBGE = func() map[int]State {
	m := make(map[int]State, len(ibgeCodes))
	for st, code := range ibgeCodes {
		m[code] = st
	}

	return m
}()

// ParseState trims and upper-cases raw input and reports whether it names one of the 27 UFs.
func ParseState(raw string) (State, bool) {
	st := State(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := ibgeCodes[st]; !ok {
		return st, false
	}

	return st, true
}

// StateFromIBGE returns the UF for an IBGE numeric state code.
func StateFromIBGE(code int) (State, bool) {
	st, ok := statesByIBGE[code]

	return st, ok
}

// IsValid reports whether s is one of the 27 UFs.
func (s State) IsValid() bool {
	_, ok := ibgeCodes[s]

	return ok
}

// IBGECode returns the IBGE numeric code, or 0 for unknown states.
func (s State) IBGECode() int {
	return ibgeCodes[s]
}

// AllStates returns the 27 UFs ordered by IBGE code.
func AllStates() []State {
	states := make([]State, 0, len(ibgeCodes))
	for code := 11; code <= 53; code++ {
		if st, ok := statesByIBGE[code]; ok {
			states = append(states, st)
		}
	}

	return states
}
