package compare

import "context"

// Scorer measures agreement between two raw field values on a [0,1] scale.
// Implementations must be symmetric in their arguments and safe for
// concurrent use.
type Scorer interface {
	Score(ctx context.Context, a, b string) float64
}
