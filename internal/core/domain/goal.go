package domain

import "time"

type GoalTier string

const (
	GoalTierLongTerm GoalTier = "long_term"
	GoalTierMidTerm  GoalTier = "mid_term"
	GoalTierWeekly   GoalTier = "weekly"
	GoalTierDaily    GoalTier = "daily"
)

// tierRank orders tiers from broadest (lowest rank) to most granular.
var tierRank = map[GoalTier]int{
	GoalTierLongTerm: 0,
	GoalTierMidTerm:  1,
	GoalTierWeekly:   2,
	GoalTierDaily:    3,
}

// TierRank returns the ordering rank of a tier, broad to granular.
// Unknown tiers rank after every known one.
func TierRank(tier GoalTier) int {
	if rank, ok := tierRank[tier]; ok {
		return rank
	}
	return len(tierRank)
}

// ValidParentTier reports whether parent sits on a strictly broader tier
// than child, the only allowed shape for a parent link.
func ValidParentTier(child, parent GoalTier) bool {
	return TierRank(parent) < TierRank(child)
}

type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not_started"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusOnHold     GoalStatus = "on_hold"
	GoalStatusCancelled  GoalStatus = "cancelled"
)

type TrackingMode string

const (
	TrackingManual    TrackingMode = "manual"
	TrackingAutomatic TrackingMode = "automatic"
)

type Goal struct {
	ID                string
	OwnerID           string
	Title             string
	Description       *string
	Tier              GoalTier
	Status            GoalStatus
	Priority          int
	Progress          int // cached 0..100 snapshot, not a source of truth
	ParentGoalID      *string
	Category          *Category
	StartDate         *time.Time
	TargetDate        *time.Time
	CompletedDate     *time.Time
	TrackingMode      TrackingMode
	TargetDays        *int
	TrackingStartDate *time.Time
	Tags              []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateGoalInput struct {
	Title             string
	Description       *string
	Tier              GoalTier
	Status            GoalStatus
	Priority          int
	Progress          int
	ParentGoalID      *string
	CategoryID        *string
	StartDate         *time.Time
	TargetDate        *time.Time
	TrackingMode      TrackingMode
	TargetDays        *int
	TrackingStartDate *time.Time
	Tags              []string
}

type UpdateGoalInput struct {
	Title             *string
	Description       *string
	DescriptionSet    bool
	Tier              *GoalTier
	Status            *GoalStatus
	Priority          *int
	Progress          *int
	ParentGoalID      *string
	ParentGoalIDSet   bool
	CategoryID        *string
	CategoryIDSet     bool
	StartDate         *time.Time
	StartDateSet      bool
	TargetDate        *time.Time
	TargetDateSet     bool
	CompletedDate     *time.Time
	CompletedDateSet  bool
	TrackingMode      *TrackingMode
	TargetDays        *int
	TargetDaysSet     bool
	TrackingStartDate *time.Time
	TrackingStartSet  bool
	Tags              []string
	TagsSet           bool
}

// GoalProgressReport is the read-side view for a single goal: the effective
// progress per the aggregation rules plus, for automatically tracked goals,
// the check-in derived streak and completion percentage.
type GoalProgressReport struct {
	GoalID            string
	EffectiveProgress int
	StoredProgress    int
	CurrentStreak     int
	PercentComplete   int
	CompletedCheckIns int
}
