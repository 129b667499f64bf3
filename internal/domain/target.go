package domain

import (
	"fmt"
	"strings"
)

// OutputUnit is the time unit output amounts are expressed in
type OutputUnit string

const (
	UnitSeconds  OutputUnit = "SECONDS"
	UnitMinutes  OutputUnit = "MINUTES"
	UnitGameDays OutputUnit = "GAME_DAYS"
)

// SecondsPerGameDay is the length of one in-game day
const SecondsPerGameDay = 435

// ParseOutputUnit resolves a unit name; an empty name is seconds
func ParseOutputUnit(name string) (OutputUnit, error) {
	switch OutputUnit(strings.ToUpper(strings.TrimSpace(name))) {
	case "", UnitSeconds:
		return UnitSeconds, nil
	case UnitMinutes:
		return UnitMinutes, nil
	case UnitGameDays:
		return UnitGameDays, nil
	}
	return "", &ValidationError{Field: FieldUnit, Reason: fmt.Sprintf(ErrMsgUnknownUnitFmt, name)}
}

// Valid reports whether u is a known unit
func (u OutputUnit) Valid() bool {
	return u == UnitSeconds || u == UnitMinutes || u == UnitGameDays
}

// Seconds returns the length of one unit in seconds.
// The zero value is treated as seconds.
func (u OutputUnit) Seconds() float64 {
	switch u {
	case UnitMinutes:
		return 60
	case UnitGameDays:
		return SecondsPerGameDay
	default:
		return 1
	}
}

// TargetKind says what a Target pins
type TargetKind int

const (
	TargetWorkers TargetKind = iota
	TargetAmount
)

func (k TargetKind) String() string {
	if k == TargetAmount {
		return "amount"
	}
	return "workers"
}

// Target is what the caller wants to sustain for the root item: either a worker
// count on the root recipe, or an absolute output amount per Unit.
type Target struct {
	Kind  TargetKind
	Value float64
	Unit  OutputUnit
}

// WorkersTarget pins the root recipe to n workers
func WorkersTarget(n float64, unit OutputUnit) Target {
	return Target{Kind: TargetWorkers, Value: n, Unit: unit}
}

// AmountTarget pins the root item's production to amount per unit
func AmountTarget(amount float64, unit OutputUnit) Target {
	return Target{Kind: TargetAmount, Value: amount, Unit: unit}
}

// Validate checks the target is positive and its unit is known
func (t Target) Validate() error {
	if t.Value <= 0 {
		field := FieldWorkers
		if t.Kind == TargetAmount {
			field = FieldAmount
		}
		return &ValidationError{Field: field, Reason: fmt.Sprintf(ErrMsgNonPositiveTargetFmt, t.Kind, t.Value)}
	}
	if t.Unit != "" && !t.Unit.Valid() {
		return &ValidationError{Field: FieldUnit, Reason: fmt.Sprintf(ErrMsgUnknownUnitFmt, t.Unit)}
	}
	return nil
}
