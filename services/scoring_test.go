package services

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRawAnswerDecoding(t *testing.T) {
	cases := []struct {
		name       string
		payload    string
		questionID int64
		chosen     []int64
	}{
		{
			name:       "plain numbers",
			payload:    `{"questionId": 10, "chosenOptionIds": [21, 22]}`,
			questionID: 10,
			chosen:     []int64{21, 22},
		},
		{
			name:       "numeric strings coerce",
			payload:    `{"questionId": "10", "chosenOptionIds": ["21"]}`,
			questionID: 10,
			chosen:     []int64{21},
		},
		{
			name:       "garbage ids become unmatchable",
			payload:    `{"questionId": 10, "chosenOptionIds": ["abc", null, 2.5]}`,
			questionID: 10,
			chosen:     []int64{UnmatchableOptionID, UnmatchableOptionID, UnmatchableOptionID},
		},
		{
			name:       "missing chosenOptionIds",
			payload:    `{"questionId": 10}`,
			questionID: 10,
			chosen:     []int64{},
		},
		{
			name:       "malformed questionId",
			payload:    `{"questionId": {"x":1}, "chosenOptionIds": [1]}`,
			questionID: UnmatchableOptionID,
			chosen:     []int64{1},
		},
		{
			name:       "non-array chosenOptionIds degrades to empty selection",
			payload:    `{"questionId": 10, "chosenOptionIds": 5}`,
			questionID: 10,
			chosen:     []int64{},
		},
		{
			name:       "non-object answer entry stays in the batch",
			payload:    `"garbage"`,
			questionID: UnmatchableOptionID,
			chosen:     []int64{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var raw RawAnswer
			if err := json.Unmarshal([]byte(tc.payload), &raw); err != nil {
				t.Fatalf("decoding %q failed: %v", tc.payload, err)
			}
			got := NormalizeAnswer(raw)
			if got.QuestionID != tc.questionID {
				t.Errorf("questionId = %d, want %d", got.QuestionID, tc.questionID)
			}
			if !reflect.DeepEqual(got.Chosen, tc.chosen) {
				t.Errorf("chosen = %v, want %v", got.Chosen, tc.chosen)
			}
		})
	}
}

func TestEvaluateAnswerUnknownQuestion(t *testing.T) {
	got := EvaluateAnswer(nil, []int64{1, 2})
	if got.IsCorrect || got.PointsAwarded != 0 {
		t.Errorf("unknown question graded %+v, want incorrect with 0 points", got)
	}
}

func TestEvaluateAnswerSingleChoice(t *testing.T) {
	q := &QuestionSnapshot{ID: 1, Type: "single", Points: 2, CorrectOptionIDs: []int64{11}}

	cases := []struct {
		name    string
		chosen  []int64
		correct bool
		points  float64
	}{
		{"matching single selection", []int64{11}, true, 2},
		{"wrong single selection", []int64{12}, false, 0},
		{"over-selection fails even if key included", []int64{11, 12}, false, 0},
		{"empty selection", []int64{}, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateAnswer(q, tc.chosen)
			if got.IsCorrect != tc.correct || got.PointsAwarded != tc.points {
				t.Errorf("EvaluateAnswer(%v) = %+v, want correct=%v points=%v",
					tc.chosen, got, tc.correct, tc.points)
			}
		})
	}
}

func TestEvaluateAnswerMultipleChoice(t *testing.T) {
	q := &QuestionSnapshot{ID: 2, Type: "multiple", Points: 3, CorrectOptionIDs: []int64{21, 22}}

	cases := []struct {
		name    string
		chosen  []int64
		correct bool
	}{
		{"exact set match", []int64{21, 22}, true},
		{"order does not matter", []int64{22, 21}, true},
		{"subset gets no partial credit", []int64{21}, false},
		{"superset fails", []int64{21, 22, 23}, false},
		{"duplicate inflating length fails", []int64{21, 21}, false},
		{"unmatchable sentinel never matches", []int64{21, UnmatchableOptionID}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateAnswer(q, tc.chosen)
			if got.IsCorrect != tc.correct {
				t.Errorf("EvaluateAnswer(%v).IsCorrect = %v, want %v", tc.chosen, got.IsCorrect, tc.correct)
			}
			wantPoints := 0.0
			if tc.correct {
				wantPoints = 3
			}
			if got.PointsAwarded != wantPoints {
				t.Errorf("EvaluateAnswer(%v).PointsAwarded = %v, want %v", tc.chosen, got.PointsAwarded, wantPoints)
			}
		})
	}
}

func TestEvaluateAnswerTextQuestion(t *testing.T) {
	// Text questions own no options, so the answer key is empty and any
	// non-empty selection fails set equality.
	q := &QuestionSnapshot{ID: 3, Type: "text", Points: 5}

	if got := EvaluateAnswer(q, []int64{1}); got.IsCorrect || got.PointsAwarded != 0 {
		t.Errorf("text question graded %+v, want incorrect with 0 points", got)
	}
}

func TestDurationSeconds(t *testing.T) {
	ms := func(v int64) *int64 { return &v }

	cases := []struct {
		name       string
		startedAt  *int64
		finishedAt *int64
		want       *int
	}{
		{"both absent", nil, nil, nil},
		{"finish absent", ms(1000), nil, nil},
		{"start absent", nil, ms(1000), nil},
		{"rounds half up", ms(1000), ms(4500), intPtr(4)},
		{"rounds down", ms(0), ms(3400), intPtr(3)},
		{"negative clamps to zero", ms(5000), ms(1000), intPtr(0)},
		{"zero interval", ms(1000), ms(1000), intPtr(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DurationSeconds(tc.startedAt, tc.finishedAt)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("DurationSeconds = %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("DurationSeconds = %d, want %d", *got, *tc.want)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
