package game

// Detection band thresholds. The state machine is a thresholded view over the
// single detection scalar, so these values are load-bearing.
const (
	suspiciousLow  = 0.2
	suspiciousHigh = 0.5
	alertedLevel   = 1.0
)

// DetectionLevel is the continuous "how discovered is the target" scalar,
// clamped to [0,1]. It rises while the target is visible and decays while
// hidden.
type DetectionLevel struct {
	Value     float64
	Threshold float64 // seconds of continuous sight to reach 1.0
	DecayRate float64
}

// Update advances the scalar by dt seconds.
func (d *DetectionLevel) Update(dt float64, visible bool) {
	if visible {
		d.Value += dt / d.Threshold
	} else {
		d.Value -= dt * d.DecayRate / d.Threshold
	}
	if d.Value > 1 {
		d.Value = 1
	}
	if d.Value < 0 {
		d.Value = 0
	}
}

// IsSuspicious reports whether the scalar sits in the suspicious band.
func (d *DetectionLevel) IsSuspicious() bool {
	return d.Value >= suspiciousLow && d.Value < suspiciousHigh
}

// IsAlerted reports whether detection is complete.
func (d *DetectionLevel) IsAlerted() bool {
	return d.Value >= alertedLevel
}

// Reset clears the scalar.
func (d *DetectionLevel) Reset() {
	d.Value = 0
}

// GuardState is a guard's awareness level.
type GuardState int

const (
	StatePatrol GuardState = iota
	StateSuspicious
	StateAlerted
	StateSearching
)

func (s GuardState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateSuspicious:
		return "suspicious"
	case StateAlerted:
		return "alerted"
	case StateSearching:
		return "searching"
	default:
		return "unknown"
	}
}

// Awareness is the per-guard state machine over the detection scalar.
// Exactly one state is active at a time; all transitions are functions of
// (state, detection, visibility, timers).
type Awareness struct {
	State     GuardState
	Detection DetectionLevel

	suspiciousTimer float64
	searchTimer     float64
	lostSightTimer  float64

	suspiciousDuration float64
	searchDuration     float64
	lostSightDelay     float64

	// Last position the target was actually seen at. Only valid while
	// hasLastKnown is set; cleared when a search is abandoned.
	lastKnownX, lastKnownY float64
	hasLastKnown           bool

	// Position that triggered suspicion. Only meaningful in Suspicious.
	investigationX, investigationY float64
	hasInvestigation               bool
}

// NewAwareness builds an awareness machine in Patrol with the config's
// detection and timer tuning.
func NewAwareness(cfg *Config) Awareness {
	return Awareness{
		State: StatePatrol,
		Detection: DetectionLevel{
			Threshold: cfg.DetectionThreshold,
			DecayRate: cfg.DecayRate,
		},
		suspiciousDuration: cfg.SuspiciousDuration,
		searchDuration:     cfg.SearchDuration,
		lostSightDelay:     cfg.LostSightDelay,
	}
}

// Update advances the machine by dt seconds and returns the resulting state.
// canSee is this tick's visibility verdict; (targetX,targetY) is the target's
// current position and (guardX,guardY) the guard's own.
func (a *Awareness) Update(dt float64, canSee bool, targetX, targetY, guardX, guardY float64) GuardState {
	a.Detection.Update(dt, canSee)

	if canSee {
		a.lastKnownX, a.lastKnownY = targetX, targetY
		a.hasLastKnown = true
		a.lostSightTimer = 0
	} else {
		a.lostSightTimer += dt
	}

	switch a.State {
	case StatePatrol:
		a.updatePatrol(targetX, targetY)
	case StateSuspicious:
		a.updateSuspicious(dt, canSee)
	case StateAlerted:
		a.updateAlerted(canSee)
	case StateSearching:
		a.updateSearching(dt, guardX, guardY)
	}
	return a.State
}

func (a *Awareness) updatePatrol(targetX, targetY float64) {
	if a.Detection.IsSuspicious() {
		a.State = StateSuspicious
		a.suspiciousTimer = 0
		a.investigationX, a.investigationY = targetX, targetY
		a.hasInvestigation = true
	} else if a.Detection.IsAlerted() {
		// Point-blank sighting: jump straight past Suspicious.
		a.State = StateAlerted
	}
}

func (a *Awareness) updateSuspicious(dt float64, canSee bool) {
	a.suspiciousTimer += dt

	if a.Detection.IsAlerted() {
		a.State = StateAlerted
		a.suspiciousTimer = 0
	} else if a.suspiciousTimer >= a.suspiciousDuration && !canSee {
		a.State = StatePatrol
		a.Detection.Reset()
		a.suspiciousTimer = 0
		a.hasInvestigation = false
	}
}

func (a *Awareness) updateAlerted(canSee bool) {
	if !canSee && a.lostSightTimer >= a.lostSightDelay {
		a.State = StateSearching
		a.searchTimer = 0
	}
}

func (a *Awareness) updateSearching(dt float64, guardX, guardY float64) {
	a.searchTimer += dt

	if a.Detection.IsAlerted() {
		a.State = StateAlerted
		a.searchTimer = 0
		return
	}
	if a.searchTimer >= a.searchDuration {
		a.State = StatePatrol
		a.Detection.Reset()
		a.searchTimer = 0
		a.hasLastKnown = false
		return
	}
	// Standing on the last known spot with nothing found: keep scanning
	// there until the search timer runs out, but drop a stale investigation
	// point once reached.
	if a.hasInvestigation && Dist(guardX, guardY, a.investigationX, a.investigationY) < 10 {
		a.hasInvestigation = false
	}
}

// TargetPosition returns the position this awareness state wants the guard to
// move toward, if any. Patrol and Alerted navigation targets come from the
// controller (patrol route / live target), not from here.
func (a *Awareness) TargetPosition() (float64, float64, bool) {
	switch a.State {
	case StateSuspicious:
		if a.hasInvestigation {
			return a.investigationX, a.investigationY, true
		}
	case StateSearching:
		if a.hasLastKnown {
			return a.lastKnownX, a.lastKnownY, true
		}
	}
	return 0, 0, false
}

// LastKnown returns the last confirmed target sighting.
func (a *Awareness) LastKnown() (float64, float64, bool) {
	return a.lastKnownX, a.lastKnownY, a.hasLastKnown
}

// Fill returns the awareness indicator fill fraction in [0,1].
func (a *Awareness) Fill() float64 {
	return a.Detection.Value
}
