package skill

import (
	"errors"
	"fmt"
)

// AbilityError is a hard failure of ability resolution. The snapshot passed
// to the resolver is left untouched whenever one is returned.
//
// The set is closed: *InsufficientResourceError, *CooldownError and
// *InvalidTargetError.
type AbilityError interface {
	error
	abilityError()
}

// Resource names used in InsufficientResourceError.
const (
	ResourceMana = "mana"
	ResourceGold = "gold"
)

// InsufficientResourceError reports that the caster cannot pay for a cast.
type InsufficientResourceError struct {
	Resource string
	Required int32
	Current  int32
}

func (e *InsufficientResourceError) Error() string {
	res := e.Resource
	if res == "" {
		res = ResourceMana
	}
	return fmt.Sprintf("not enough %s: need %d, have %d", res, e.Required, e.Current)
}

// CooldownError reports that the slot has not recovered yet.
type CooldownError struct {
	Ability   string
	Remaining int32
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s is on cooldown (%d ticks remaining)", e.Ability, e.Remaining)
}

// InvalidTargetError reports that the cast cannot be aimed or performed.
// Target describes the offending entity, Reason is a short lowercase phrase
// such as "stunned" or "not yet learned".
type InvalidTargetError struct {
	Target string
	Reason string
}

func (e *InvalidTargetError) Error() string {
	if e.Target == "" {
		return "invalid target: " + e.Reason
	}
	return fmt.Sprintf("invalid target %s: %s", e.Target, e.Reason)
}

func (*InsufficientResourceError) abilityError() {}
func (*CooldownError) abilityError()             {}
func (*InvalidTargetError) abilityError()        {}

// InvalidTarget builds an InvalidTargetError.
func InvalidTarget(target, reason string) *InvalidTargetError {
	return &InvalidTargetError{Target: target, Reason: reason}
}

// NotEnoughMana builds an InsufficientResourceError for mana.
func NotEnoughMana(required, current int32) *InsufficientResourceError {
	return &InsufficientResourceError{Resource: ResourceMana, Required: required, Current: current}
}

// NotEnoughGold builds an InsufficientResourceError for gold.
func NotEnoughGold(required, current int32) *InsufficientResourceError {
	return &InsufficientResourceError{Resource: ResourceGold, Required: required, Current: current}
}

// IsAbilityError reports whether err (or anything it wraps) is an AbilityError.
func IsAbilityError(err error) bool {
	var ae AbilityError
	return errors.As(err, &ae)
}
