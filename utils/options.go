package utils

import "encoding/json"

const optionKeyLetters = "ABCD"

// RawOption accepts the two shapes an option may be authored in: a bare
// string ("Paris") or a structured record ({"key":"B","text":"Paris",
// "isCorrect":true}).
type RawOption struct {
	Key       string
	Text      string
	IsCorrect bool
}

func (o *RawOption) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*o = RawOption{Text: text}
		return nil
	}

	var structured struct {
		Key       string `json:"key"`
		Text      string `json:"text"`
		IsCorrect bool   `json:"isCorrect"`
	}
	if err := json.Unmarshal(b, &structured); err != nil {
		return err
	}
	*o = RawOption(structured)
	return nil
}

// NormalizedOption is the canonical option record persisted for a question.
type NormalizedOption struct {
	Key       string
	Text      string
	IsCorrect bool
}

// NormalizeOptions assigns positional default keys (A, B, C, D) to options
// authored without one.
func NormalizeOptions(options []RawOption) []NormalizedOption {
	normalized := make([]NormalizedOption, len(options))
	for i, opt := range options {
		key := opt.Key
		if key == "" && i < len(optionKeyLetters) {
			key = string(optionKeyLetters[i])
		}
		normalized[i] = NormalizedOption{
			Key:       key,
			Text:      opt.Text,
			IsCorrect: opt.IsCorrect,
		}
	}
	return normalized
}

// CountCorrect returns how many normalized options are marked correct.
func CountCorrect(options []NormalizedOption) int {
	count := 0
	for _, opt := range options {
		if opt.IsCorrect {
			count++
		}
	}
	return count
}
