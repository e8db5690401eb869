// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for options and scratch state.
//
// Purpose:
//   - Expose the captured Options and the scratch allocation state to matrix_test ONLY.
//   - Compiled only with the package's tests; invisible in production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid
	PanicLoggerNil_TestOnly             = panicLoggerNil
)

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	PivotTolerance    float32
	ClosedFormInverse bool
	HasLogger         bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot of gatherOptions(opts...).
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// DenseOptionsSnapshot_TestOnly returns the options captured by m.
func DenseOptionsSnapshot_TestOnly(m *Dense) OptionsSnapshot {
	return snapshotOf(m.opts)
}

// ScratchState_TestOnly reports which scratch matrices m has allocated.
func ScratchState_TestOnly(m *Dense) (transformation, result bool) {
	return m.transformation != nil, m.result != nil
}

// ScratchOptionsSnapshot_TestOnly returns the options of m's result scratch,
// allocating it if needed.
func ScratchOptionsSnapshot_TestOnly(m *Dense) OptionsSnapshot {
	return snapshotOf(m.resultScratch().opts)
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		PivotTolerance:    o.tol,
		ClosedFormInverse: o.closedForm,
		HasLogger:         o.logger != nil,
	}
}
