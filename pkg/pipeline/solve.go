package pipeline

import (
	"fmt"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
	"github.com/gduarte/massing/pkg/program"
)

// SolveProgram runs the solve stage without caching: classify every room,
// derive snapped dimensions, optimize the batch, and assemble the records.
//
// Bad rooms never abort the batch. A row with an empty name or a
// non-positive area is skipped with a warning, a room whose policy ratios
// all fail its aspect range is solved with the generic fallback and flagged
// degraded, and a room whose final area misses the target by more than the
// tolerance is flagged off-target.
func SolveProgram(opts Options) *Solved {
	out := &Solved{}

	rooms := make([]*massing.Result, 0, len(opts.Rooms))
	for i, in := range opts.Rooms {
		if err := errors.ValidateRoomName(in.Name); err != nil {
			out.warn(errors.Warning{
				Code:    errors.GetCode(err),
				Row:     i + 1,
				Message: errors.UserMessage(err),
			})
			continue
		}
		if err := errors.ValidateArea(in.AreaM2); err != nil {
			out.warn(errors.Warning{
				Code:    errors.GetCode(err),
				Room:    in.Name,
				Message: errors.UserMessage(err),
			})
			continue
		}

		typ := program.Classify(in.Name)
		r := massing.Solve(in.Name, in.AreaM2, typ, opts.ModuleCM)
		if r.Degraded {
			out.warn(errors.Warning{
				Code:    errors.ErrCodeNoAcceptableProportion,
				Room:    in.Name,
				Message: "no preferred ratio fits the aspect range, used generic proportions",
			})
		}
		rooms = append(rooms, r)
	}

	if !opts.SkipOptimize {
		out.Optimize = massing.Optimize(rooms, massing.OptimizeOptions{
			ModuleCM:      opts.ModuleCM,
			AreaTolerance: opts.AreaTolerance,
			MaxPasses:     opts.MaxPasses,
		})
	}

	// Dimensions are final here; module snapping alone can push a small
	// room past the tolerance, so the flag covers unoptimized runs too.
	massing.MarkOffTarget(rooms, opts.AreaTolerance)
	for _, r := range rooms {
		if r.OffTarget && !r.Degraded {
			out.warn(errors.Warning{
				Code: errors.ErrCodeAreaOutOfTolerance,
				Room: r.Name,
				Message: fmt.Sprintf("built area %.2fm² deviates %.1f%% from the %.2fm² target, beyond the %.1f%% tolerance",
					r.AreaCM2()/massing.CM2PerM2, 100*r.Deviation(),
					r.TargetAreaCM2/massing.CM2PerM2, 100*opts.AreaTolerance),
			})
		}
	}

	out.Batch = massing.Analyze(rooms)
	out.Records, out.Dropped = massing.EmitRecords(rooms, opts.HeightCM)
	return out
}

func (s *Solved) warn(w errors.Warning) {
	s.Warnings = append(s.Warnings, w)
}
