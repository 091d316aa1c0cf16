package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// Likelihood is the probability score of a risk occurring (1=very low, 5=very high).
// It is also the weight of the risk in a random draw.
type Likelihood int

// Validate checks if the Likelihood is within the scoring scale
func (l Likelihood) Validate() error {
	if l < MinScore || l > MaxScore {
		return goerr.New("likelihood must be between 1 and 5", goerr.V("likelihood", int(l)))
	}
	return nil
}

// String returns the string representation of Likelihood
func (l Likelihood) String() string {
	return strconv.Itoa(int(l))
}
