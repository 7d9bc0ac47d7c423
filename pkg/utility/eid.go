package utility

import (
	"github.com/google/uuid"
)

// ExecutionID identifies one evaluation run. Version 7 ids sort by creation
// time, so log lines of consecutive runs order naturally.
type ExecutionID = uuid.UUID

func NewExecutionID() ExecutionID {
	return uuid.Must(uuid.NewV7())
}

func ParseExecutionID(s string) (ExecutionID, error) {
	return uuid.Parse(s)
}
