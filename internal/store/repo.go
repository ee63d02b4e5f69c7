package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData is one session lifecycle row. Sequence and Timestamp
// are assigned on append and populated on reads.
type SessionEventData struct {
	Sequence          int64
	Timestamp         time.Time
	SessionID         string
	StudentID         string
	Topic             string
	Action            string
	Difficulty        string
	QuestionsTotal    int
	QuestionsAnswered int
	CorrectAnswers    int
	InterventionsUsed int
	DurationMs        int64
	XPAwarded         int
}

// Session lifecycle actions.
const (
	ActionStarted   = "started"
	ActionCompleted = "completed"
	ActionAbandoned = "abandoned"
)

// AnswerEventData is one resolved answer row.
type AnswerEventData struct {
	Sequence         int64
	Timestamp        time.Time
	SessionID        string
	StudentID        string
	Topic            string
	Subtopic         string
	QuestionID       string
	QuestionType     string
	Difficulty       string
	Value            string
	Correct          bool
	TimeMs           int64
	HintsUsed        int
	Attempts         int
	StreakAfter      int
	MasteryAfter     int
	DifficultyAfter  string
	DifficultyReason string
}

// InterventionEventData is one served intervention row.
type InterventionEventData struct {
	Sequence   int64
	Timestamp  time.Time
	SessionID  string
	StudentID  string
	Topic      string
	Kind       string
	Priority   string
	MessageKey string
	Emotion    string
	Phase      string
}

// RewardEventData is one session payout row.
type RewardEventData struct {
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	StudentID   string
	XP          int
	BadgeXP     int
	Badges      []string
	Worlds      []string
	LevelBefore int
	LevelAfter  int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageRow aggregates model API calls for one provider/model pair.
type LLMUsageRow struct {
	Provider     string
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendInterventionEvent(ctx context.Context, data InterventionEventData) error
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AnswerHistory returns resolved answers for a student on a topic,
	// oldest first. Limit keeps the most recent rows.
	AnswerHistory(ctx context.Context, studentID, topic string, opts QueryOpts) ([]AnswerEventData, error)

	// SessionHistory returns session lifecycle rows for a student,
	// oldest first. Limit keeps the most recent rows.
	SessionHistory(ctx context.Context, studentID string, opts QueryOpts) ([]SessionEventData, error)

	// TopicAccuracy reports the all-time share of correct answers for a
	// student on a topic, 0 when no answers exist.
	TopicAccuracy(ctx context.Context, studentID, topic string) (float64, error)

	// InterventionCounts reports how often each intervention kind was
	// served to a student.
	InterventionCounts(ctx context.Context, studentID string) (map[string]int, error)

	// LLMUsage aggregates token consumption per provider/model pair.
	LLMUsage(ctx context.Context) ([]LLMUsageRow, error)
}

// Snapshot kinds.
const (
	KindPerformance = "performance"
	KindProgress    = "progress"
)

// Snapshot is a point-in-time capture of derived state under a
// (kind, key) pair.
type Snapshot struct {
	ID        int
	Kind      string
	Key       string
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo manages keyed state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for its (kind, key) pair.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for the pair, or nil if
	// none exist.
	Latest(ctx context.Context, kind, key string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots for the pair.
	Prune(ctx context.Context, kind, key string, keep int) error
}
