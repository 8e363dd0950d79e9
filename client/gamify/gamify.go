// Package gamify is the in-memory source of truth for the gamification
// counters. Counters change through exactly two channels: optimistic local
// deltas applied after a confirmed call, and authoritative snapshots that
// overwrite whatever the server reports.
package gamify

// Counters holds the per-user gamification state. The server is the
// authority; no ordering between counters is enforced here.
type Counters struct {
	Points        int `json:"points"`
	Coins         int `json:"coins"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	StreakShields int `json:"streakShields"`
}

// Snapshot is a partial authoritative update. Nil fields are left untouched.
type Snapshot struct {
	Points        *int
	Coins         *int
	CurrentStreak *int
	LongestStreak *int
	StreakShields *int
}

// Int is a convenience for building snapshot fields.
func Int(v int) *int { return &v }

// Sync holds the counters and notifies subscribers on every change.
type Sync struct {
	counters Counters
	subs     []func(Counters)
}

func New() *Sync { return &Sync{} }

// Counters returns the current values.
func (s *Sync) Counters() Counters { return s.counters }

// Subscribe registers a callback invoked after every mutation.
func (s *Sync) Subscribe(fn func(Counters)) {
	s.subs = append(s.subs, fn)
}

// Seed fully replaces the counters, discarding any local drift. Used on
// login, restore and registration completion.
func (s *Sync) Seed(c Counters) {
	s.counters = c
	s.notify()
}

// Apply overwrites only the fields present in the snapshot. Used when a
// server response carries a subset of the counters, such as a shield
// purchase returning coins and shields.
func (s *Sync) Apply(snap Snapshot) {
	if snap.Points != nil {
		s.counters.Points = *snap.Points
	}
	if snap.Coins != nil {
		s.counters.Coins = *snap.Coins
	}
	if snap.CurrentStreak != nil {
		s.counters.CurrentStreak = *snap.CurrentStreak
	}
	if snap.LongestStreak != nil {
		s.counters.LongestStreak = *snap.LongestStreak
	}
	if snap.StreakShields != nil {
		s.counters.StreakShields = *snap.StreakShields
	}
	s.notify()
}

// SpendCoins applies the local coin deduction for a purchase whose detailed
// re-fetch is skipped. Callers invoke it only after the purchase call has
// completed successfully.
func (s *Sync) SpendCoins(cost int) {
	s.counters.Coins -= cost
	s.notify()
}

// Reset zeroes every counter. Runs on logout; nothing persists locally
// across sessions.
func (s *Sync) Reset() {
	s.counters = Counters{}
	s.notify()
}

func (s *Sync) notify() {
	for _, fn := range s.subs {
		fn(s.counters)
	}
}
