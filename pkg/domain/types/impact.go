package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// Impact is the damage score of a risk when it occurs (1=very low, 5=very high)
type Impact int

// Validate checks if the Impact is within the scoring scale
func (i Impact) Validate() error {
	if i < MinScore || i > MaxScore {
		return goerr.New("impact must be between 1 and 5", goerr.V("impact", int(i)))
	}
	return nil
}

// String returns the string representation of Impact
func (i Impact) String() string {
	return strconv.Itoa(int(i))
}
