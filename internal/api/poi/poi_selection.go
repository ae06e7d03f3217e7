package poi

import (
	"fmt"

	"github.com/FACorreiaa/go-place-finder/internal/types"
)

// Selection policy names accepted by NewSelector.
const (
	PolicyFirst        = "first"
	PolicyNth          = "nth"
	PolicyHighestRated = "highest_rated"
)

// Selector picks one candidate out of a places search result.
type Selector interface {
	Select(candidates []types.PlaceCandidate) (types.PlaceCandidate, error)
	Name() string
}

// NthResult picks the candidate at a fixed position.
//
// The original service always returned the fourth result (index 3). That is
// kept as the configured default but is most likely a bug; use FirstResult
// or HighestRated to get a relevance-based pick.
type NthResult struct {
	Index int
}

func (s NthResult) Name() string { return fmt.Sprintf("%s(%d)", PolicyNth, s.Index) }

func (s NthResult) Select(candidates []types.PlaceCandidate) (types.PlaceCandidate, error) {
	if len(candidates) == 0 {
		return types.PlaceCandidate{}, types.ErrNoPlaces
	}
	if s.Index < 0 || s.Index >= len(candidates) {
		return types.PlaceCandidate{}, fmt.Errorf("%w: index %d of %d results", types.ErrSelectionOutOfRange, s.Index, len(candidates))
	}
	return candidates[s.Index], nil
}

// FirstResult picks the provider's top-ranked candidate.
type FirstResult struct{}

func (FirstResult) Name() string { return PolicyFirst }

func (FirstResult) Select(candidates []types.PlaceCandidate) (types.PlaceCandidate, error) {
	return NthResult{Index: 0}.Select(candidates)
}

// HighestRated picks the candidate with the best rating; ties keep provider order.
type HighestRated struct{}

func (HighestRated) Name() string { return PolicyHighestRated }

func (HighestRated) Select(candidates []types.PlaceCandidate) (types.PlaceCandidate, error) {
	if len(candidates) == 0 {
		return types.PlaceCandidate{}, types.ErrNoPlaces
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Rating > best.Rating {
			best = c
		}
	}
	return best, nil
}

// NewSelector builds the selection policy named by policy. index is only used
// by the nth policy.
func NewSelector(policy string, index int) (Selector, error) {
	switch policy {
	case PolicyFirst:
		return FirstResult{}, nil
	case PolicyNth, "":
		if index < 0 {
			return nil, fmt.Errorf("selection index must not be negative, got %d", index)
		}
		return NthResult{Index: index}, nil
	case PolicyHighestRated:
		return HighestRated{}, nil
	default:
		return nil, fmt.Errorf("unknown selection policy %q", policy)
	}
}
