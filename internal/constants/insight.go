package constants

const (
	// Streak scoring constants:
	// - StreakWindowDays is the trailing window every weekly computation uses.
	// - StreakMissPenalty is subtracted when a day breaks an active streak. A
	//   logged day always gains a full point, so the score stays in [0, 7].
	StreakWindowDays  = 7
	StreakMissPenalty = 0.5

	// ConsistencyTargetDays is the "5+" encouragement threshold for days logged
	// per week.
	ConsistencyTargetDays = 5

	// Gratitude engagement tiers (weekly entry counts)
	GratitudeStrongThreshold    = 5
	GratitudeEncourageThreshold = 3
)

// InsightOnboarding is returned verbatim when there are no habits or no logs at all.
const InsightOnboarding = "Welcome! Add a habit and log a few minutes to unlock your weekly debrief."

const (
	InsightNoStandout   = "No single habit stood out this week — every minute you log builds the picture."
	InsightAllActive    = "All of your high-importance habits saw activity this week."
	GratitudeTierStrong = "That reflection habit is real momentum — keep it going."
	GratitudeTierAlmost = "You're close to a solid reflection rhythm — try adding one more this week."
	GratitudeTierNudge  = "A short note about one good moment each day is a powerful place to start."
)

const (
	// SuggestedFocus templates for the range summary, by number of habits logged
	FocusNone   = "No minutes logged yet for this period. Pick one habit and log a few minutes to get started."
	FocusSingle = "Great consistency! %s is getting all of your attention — keep it up."
	FocusMulti  = "%s is getting the least time. Consider shifting a few minutes its way."
)
