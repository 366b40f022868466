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

// LessonEventData is the payload for a lesson-generated event.
type LessonEventData struct {
	SessionID   string
	Topic       string
	Title       string
	Difficulty  string
	Explanation string
	FunFacts    []string
	Source      string // "llm", "scraped", or "placeholder"
}

// LessonRecord is a stored lesson event.
type LessonRecord struct {
	ID          int
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	Topic       string
	Title       string
	Difficulty  string
	Explanation string
	FunFacts    []string
	Source      string
}

// QuizEventData is the payload for a quiz-completed event.
type QuizEventData struct {
	SessionID    string
	Topic        string
	Difficulty   string
	Questions    int
	Correct      int
	DurationSecs int
}

// QuizRecord is a stored quiz event.
type QuizRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	SessionID    string
	Topic        string
	Difficulty   string
	Questions    int
	Correct      int
	DurationSecs int
}

// AnswerEventData is the payload for a single quiz answer.
type AnswerEventData struct {
	SessionID     string
	QuestionIndex int
	QuestionText  string
	Options       []string
	CorrectIndex  int
	ChosenIndex   int
	Correct       bool
	TimeMs        int64
}

// AnswerRecord is a stored answer event.
type AnswerRecord struct {
	ID            int
	Sequence      int64
	Timestamp     time.Time
	SessionID     string
	QuestionIndex int
	QuestionText  string
	Options       []string
	CorrectIndex  int
	ChosenIndex   int
	Correct       bool
	TimeMs        int64
}

// LLMRequestEventData is the payload for one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates usage per purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LearningStats aggregates the learner's overall activity.
type LearningStats struct {
	Lessons         int
	Topics          int
	QuizzesTaken    int
	QuestionsServed int
	CorrectAnswers  int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLesson records a generated lesson.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// AppendQuiz records a completed quiz.
	AppendQuiz(ctx context.Context, data QuizEventData) error

	// AppendAnswer records a single quiz answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLessons returns lessons, newest first.
	QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error)

	// QuizBySession returns the quiz result for a session, or nil.
	QuizBySession(ctx context.Context, sessionID string) (*QuizRecord, error)

	// AnswersBySession returns a session's answers in question order.
	AnswersBySession(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// Stats aggregates overall learning activity.
	Stats(ctx context.Context) (*LearningStats, error)

	// RecentTopics returns up to limit distinct topics, newest first.
	RecentTopics(ctx context.Context, limit int) ([]string, error)
}
