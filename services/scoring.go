package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// UnmatchableOptionID is the coerced value of a submitted id that could not
// be parsed as a numeric identifier. Real option ids are positive, so a
// sentinel entry can never match an answer key.
const UnmatchableOptionID int64 = -1

// FlexID decodes a client-supplied identifier leniently: JSON numbers and
// numeric strings parse to their integer value, anything else (null, objects,
// fractional numbers, garbage strings) becomes UnmatchableOptionID. Decoding
// never fails, so one malformed id cannot reject a whole submission.
type FlexID int64

func (f *FlexID) UnmarshalJSON(b []byte) error {
	*f = FlexID(coerceID(b))
	return nil
}

func coerceID(b []byte) int64 {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return UnmatchableOptionID
}

// FlexIDList decodes a chosenOptionIds value leniently: a JSON array decodes
// element-wise through FlexID, any other shape (number, string, object, null)
// becomes an empty selection. Decoding never fails.
type FlexIDList []FlexID

func (l *FlexIDList) UnmarshalJSON(b []byte) error {
	var ids []FlexID
	if err := json.Unmarshal(b, &ids); err != nil {
		*l = nil
		return nil
	}
	*l = ids
	return nil
}

// RawAnswer is one entry of a submitted answer batch, as received on the wire.
type RawAnswer struct {
	QuestionID      FlexID     `json:"questionId"`
	ChosenOptionIDs FlexIDList `json:"chosenOptionIds"`
}

// UnmarshalJSON tolerates answer entries that are not objects at all: such an
// entry stays in the batch as an answer that can never resolve to a question,
// so it is recorded incorrect instead of rejecting the whole submission.
func (a *RawAnswer) UnmarshalJSON(b []byte) error {
	type plain RawAnswer
	var decoded plain
	if err := json.Unmarshal(b, &decoded); err != nil {
		*a = RawAnswer{QuestionID: FlexID(UnmatchableOptionID)}
		return nil
	}
	*a = RawAnswer(decoded)
	return nil
}

// NormalizedAnswer is a RawAnswer with every identifier coerced to int64.
type NormalizedAnswer struct {
	QuestionID int64
	Chosen     []int64
}

func NormalizeAnswer(raw RawAnswer) NormalizedAnswer {
	chosen := make([]int64, len(raw.ChosenOptionIDs))
	for i, id := range raw.ChosenOptionIDs {
		chosen[i] = int64(id)
	}
	return NormalizedAnswer{QuestionID: int64(raw.QuestionID), Chosen: chosen}
}

// QuestionSnapshot is the reference data one submission grades against,
// captured once per submission from the question bank.
type QuestionSnapshot struct {
	ID               int64
	Type             string
	Points           float64
	CorrectOptionIDs []int64
}

// AnswerResult is the grading outcome for a single submitted answer.
type AnswerResult struct {
	IsCorrect     bool
	PointsAwarded float64
}

// EvaluateAnswer grades one normalized answer against its question snapshot.
// A nil snapshot (unknown question id) grades incorrect for zero points.
// Single-choice questions demand exactly one selection; everything else is
// exact set equality between the chosen ids and the answer key, with no
// partial credit. Text questions have an empty answer key and therefore
// always grade incorrect.
func EvaluateAnswer(q *QuestionSnapshot, chosen []int64) AnswerResult {
	if q == nil {
		return AnswerResult{}
	}
	if q.Type == "single" && len(chosen) != 1 {
		return AnswerResult{}
	}
	if !sameSet(chosen, q.CorrectOptionIDs) {
		return AnswerResult{}
	}
	return AnswerResult{IsCorrect: true, PointsAwarded: q.Points}
}

// sameSet compares chosen against correct as sets. Cardinality is checked
// before deduplication, so a duplicate that inflates the length past the
// answer key's size fails the match.
func sameSet(chosen, correct []int64) bool {
	if len(chosen) != len(correct) {
		return false
	}
	seen := make(map[int64]bool, len(chosen))
	for _, id := range chosen {
		seen[id] = true
	}
	for _, id := range correct {
		if !seen[id] {
			return false
		}
	}
	return true
}

// DurationSeconds derives the attempt duration from the submitted epoch-ms
// timestamps. Nil when either timestamp is absent; negative intervals clamp
// to zero.
func DurationSeconds(startedAt, finishedAt *int64) *int {
	if startedAt == nil || finishedAt == nil {
		return nil
	}
	ms := math.Max(0, float64(*finishedAt-*startedAt))
	secs := int(math.Round(ms / 1000))
	return &secs
}
