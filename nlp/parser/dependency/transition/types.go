package transition

import (
	"fmt"
)

// Transition codes double as weight table columns
type Transition int

const (
	SHIFT Transition = iota
	LEFT
	RIGHT
	REDUCE
)

// NUM_TRANSITIONS is the number of weight table columns
const NUM_TRANSITIONS = 4

var transitionNames = [NUM_TRANSITIONS]string{"SH", "LA", "RA", "RE"}

func (t Transition) String() string {
	if t < 0 || int(t) >= NUM_TRANSITIONS {
		return fmt.Sprintf("Transition(%d)", int(t))
	}
	return transitionNames[t]
}

// Codes converts transitions to the class codes used by the classifier
func Codes(transitions []Transition) []int {
	retval := make([]int, len(transitions))
	for i, t := range transitions {
		retval[i] = int(t)
	}
	return retval
}

// OracleError marks a training sentence whose gold tree the oracle
// cannot derive, typically because the tree is not projective.
type OracleError struct {
	Sentence int
	Step     int
	Reason   string
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("sentence %d: oracle failed at step %d: %s", e.Sentence, e.Step, e.Reason)
}
