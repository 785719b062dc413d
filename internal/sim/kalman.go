package sim

// Filter is a discrete-time linear Kalman filter over the
// constant-velocity model with state [position, velocity] and a scalar
// position observation.
//
// Model matrices for step size dt:
//
//	F = [[1, dt], [0, 1]]
//	Q = q * [[dt⁴/4, dt³/2], [dt³/2, dt²]]
//	H = [1, 0]
//	R = stddev²
//
// The 2-state recursion is written out over fixed-size arrays rather
// than a dynamic matrix type; every intermediate stays on the stack and
// the arithmetic is auditable term by term.
//
// A Filter cycles strictly Predict then Update once per step; the
// simulation loop owns that pairing. It is not safe for concurrent use.
type Filter struct {
	x [2]float64    // state estimate [position, velocity]
	p [2][2]float64 // estimation error covariance, symmetric PSD

	dt float64
	q  [2][2]float64 // process noise covariance Q
	r  float64       // observation noise variance
}

// NewFilter returns a filter for step size dt with process noise
// intensity q and observation noise variance r, starting from the state
// guess x0 with covariance P0 = diag(p0, p0).
//
// Preconditions (enforced by Config.Validate before any filter is
// built): dt > 0, q >= 0, r >= 0, p0 >= 0.
func NewFilter(dt, q, r float64, x0 [2]float64, p0 float64) *Filter {
	dt2 := dt * dt
	return &Filter{
		x:  x0,
		p:  [2][2]float64{{p0, 0}, {0, p0}},
		dt: dt,
		q: [2][2]float64{
			{q * dt2 * dt2 / 4, q * dt2 * dt / 2},
			{q * dt2 * dt / 2, q * dt2},
		},
		r: r,
	}
}

// Predict advances the state one step through the motion model and
// inflates the covariance by the process noise: x ← F·x, P ← F·P·Fᵗ + Q.
func (f *Filter) Predict() {
	f.x[0] += f.dt * f.x[1]

	p00 := f.p[0][0] + f.dt*(f.p[0][1]+f.p[1][0]) + f.dt*f.dt*f.p[1][1] + f.q[0][0]
	p01 := f.p[0][1] + f.dt*f.p[1][1] + f.q[0][1]
	p11 := f.p[1][1] + f.q[1][1]

	f.p[0][0] = p00
	f.p[0][1] = p01
	f.p[1][0] = p01
	f.p[1][1] = p11
}

// Update folds the position measurement z into the estimate:
//
//	y = z − H·x
//	S = H·P·Hᵗ + R  (scalar)
//	K = P·Hᵗ / S
//	x ← x + K·y
//	P ← (I − K·H)·P
//
// S is zero only when R is zero and the prior position variance is
// zero, meaning the prior is already exact; the update is skipped
// rather than dividing by zero.
func (f *Filter) Update(z float64) {
	s := f.p[0][0] + f.r
	if s <= 0 {
		return
	}

	k0 := f.p[0][0] / s
	k1 := f.p[1][0] / s

	y := z - f.x[0]
	f.x[0] += k0 * y
	f.x[1] += k1 * y

	p00 := (1 - k0) * f.p[0][0]
	p01 := (1 - k0) * f.p[0][1]
	p11 := f.p[1][1] - k1*f.p[0][1]

	f.p[0][0] = p00
	// the off-diagonal terms agree analytically; assigning both from
	// one expression keeps P symmetric under floating-point rounding
	f.p[0][1] = p01
	f.p[1][0] = p01
	f.p[1][1] = p11
}

// State returns the current estimate as [position, velocity].
func (f *Filter) State() [2]float64 {
	return f.x
}

// Covariance returns the current estimation error covariance.
func (f *Filter) Covariance() [2][2]float64 {
	return f.p
}
