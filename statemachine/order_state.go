package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "restaurant", "system"
}

// validTransitions is the authoritative state machine definition. PROCESSED
// is the initial state; DELIVERED and CANCELLED are terminal.
var validTransitions = []Transition{
	{From: models.StatusProcessed, To: models.StatusDelivered, Actor: "restaurant"},
	{From: models.StatusProcessed, To: models.StatusCancelled, Actor: "restaurant"},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'",
	)
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
