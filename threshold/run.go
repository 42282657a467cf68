package threshold

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/rotatedplanar"
	"github.com/surfqec/uf/surface"
	"github.com/surfqec/uf/toric"
	"github.com/surfqec/uf/unionfind"
)

// newCode builds the code family's distance-D instance (spec.md §6
// "make_toric(W, L)", "make_rotated_planar(D)"; toric is squared to a
// single distance parameter for the grid-driven sweep).
func newCode(family CodeFamily, distance int) (surface.Code, error) {
	switch family {
	case Toric:
		return toric.New(distance, distance)
	case RotatedPlanar:
		return rotatedplanar.New(distance)
	default:
		return nil, surface.NewKindError(surface.KindConfiguration,
			errors.Wrapf(ErrUnknownFamily, "%q", family))
	}
}

// Run sweeps cfg's (distance, error_rate) grid, sampling IID bit-flip
// errors per data qubit, decoding each with unionfind, and scoring logical
// failure with oracle (spec.md §4.E). A nil oracle uses DefaultOracle.
//
// Ctx is checked between grid points so a long sweep can be cancelled; it
// is not checked between individual trials (spec.md §5: the decoder itself
// has no suspension points).
func Run(ctx context.Context, cfg Config, oracle LogicalOracle) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, surface.NewKindError(surface.KindConfiguration, err)
	}
	if oracle == nil {
		oracle = DefaultOracle
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	report := Report{
		RunID:  uuid.New(),
		Family: cfg.Family,
		Points: make([]Point, 0, len(cfg.Distances)*len(cfg.ErrorRates)),
	}

	for _, d := range cfg.Distances {
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		default:
		}

		code, err := newCode(cfg.Family, d)
		if err != nil {
			return Report{}, err
		}

		for _, p := range cfg.ErrorRates {
			point, err := runPoint(code, d, p, cfg.TrialsPerPoint, rng, oracle)
			if err != nil {
				return Report{}, err
			}
			report.Points = append(report.Points, point)
		}
	}

	return report, nil
}

// runPoint samples trials until TrialsPerPoint trials with a non-empty
// syndrome have been counted (spec.md §4.E: an empty syndrome is
// discarded and does not count toward N), decoding each and scoring
// logical failure.
func runPoint(code surface.Code, distance int, p float64, trialsPerPoint int, rng *rand.Rand, oracle LogicalOracle) (Point, error) {
	numData := code.NumDataQubits()
	point := Point{Distance: distance, ErrorRate: p}

	for point.Trials < trialsPerPoint {
		indices := sampleErrorIndices(numData, p, rng)
		errorData := bitstring.FromIndices(indices...)

		syndrome := code.GenerateSyndrome(errorData, surface.X, false)
		if syndrome.IsZero() {
			continue // not counted toward N
		}
		point.Trials++

		result, err := unionfind.Decode(code, syndrome, surface.X.Opposite())
		if err != nil {
			if surface.Is(err, surface.KindIllFormedSyndrome) {
				// Caught and discarded per spec.md §7 propagation policy;
				// the trial is re-sampled, not counted as a failure.
				point.Trials--
				continue
			}

			return Point{}, err
		}
		point.DecodeRounds += result.Rounds

		residualError := errorData.Xor(result.Correction())
		residualSyndrome := code.GenerateSyndrome(residualError, surface.X, false)
		if !residualSyndrome.IsZero() || oracle.IsLogicalError(code, residualError, surface.X) {
			point.LogicalFailures++
		}
	}

	return point, nil
}

// sampleErrorIndices draws an IID bit-flip error at rate p over numData
// qubits.
func sampleErrorIndices(numData int, p float64, rng *rand.Rand) []int {
	var indices []int
	for i := 0; i < numData; i++ {
		if rng.Float64() < p {
			indices = append(indices, i)
		}
	}

	return indices
}
