package usecase

import (
	"fmt"
	"math/bits"
	"sync"

	"task-assistant/internal/model"
	"task-assistant/internal/translation"
	"task-assistant/pkg/schedule"
)

type implTranslator struct {
	encode map[int]int // bitmask -> stored value
	decode map[int]int // stored value -> bitmask

	mu    sync.Mutex
	stats translation.Stats
}

var _ translation.Translator = (*implTranslator)(nil)

// NewTranslator builds the day 15..31 compression tables.
func NewTranslator() *implTranslator {
	t := &implTranslator{
		encode: make(map[int]int, translation.LastDay-translation.FirstDay+1),
		decode: make(map[int]int, translation.LastDay-translation.FirstDay+1),
	}
	for day := translation.FirstDay; day <= translation.LastDay; day++ {
		bit := schedule.DayOfMonthBit(day)
		value := translation.BaseValue + day - translation.FirstDay
		t.encode[bit] = value
		t.decode[value] = bit
	}
	return t
}

// NeedsTranslation reports whether rec is a monthly schedule on exactly one
// day the store cannot represent.
func (t *implTranslator) NeedsTranslation(rec schedule.Record) bool {
	if rec.FreqType != schedule.FreqMonthly || rec.FreqRecurrance < translation.Threshold {
		return false
	}
	return bits.OnesCount(uint(rec.FreqRecurrance)) == 1
}

func (t *implTranslator) Encode(params model.TaskParameters) (model.TaskParameters, translation.Metadata, error) {
	mask := params.FreqRecurrance
	value, ok := t.encode[mask]
	if !ok {
		t.count(func(s *translation.Stats) { s.Errors++ })
		return params, translation.Metadata{}, model.NewValidationError(
			fmt.Sprintf("Bitmask %d is not a single day between the %dth and %dst", mask, translation.FirstDay, translation.LastDay),
			model.CodeTranslationFailed,
		).WithDetail(model.DetailOriginalError, mask)
	}

	md := translation.Metadata{
		Method:          translation.MethodCompressed,
		OriginalBitmask: mask,
		EncodedValue:    value,
		Day:             bits.TrailingZeros(uint(mask)) + 1,
		TaskName:        params.TaskName,
	}
	params.FreqRecurrance = value
	t.count(func(s *translation.Stats) {
		s.TranslationsPerformed++
		s.CacheHits++
	})
	return params, md, nil
}

// Decode restores the original bitmask. Unknown values pass through.
func (t *implTranslator) Decode(params model.TaskParameters, md translation.Metadata) model.TaskParameters {
	if !md.Encoded() {
		return params
	}
	mask, ok := t.decode[params.FreqRecurrance]
	if !ok {
		t.count(func(s *translation.Stats) { s.Errors++ })
		return params
	}
	params.FreqRecurrance = mask
	t.count(func(s *translation.Stats) {
		s.DecodingsPerformed++
		s.CacheHits++
	})
	return params
}

func (t *implTranslator) Stats() translation.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stats
	s.EncodeTableSize = len(t.encode)
	s.DecodeTableSize = len(t.decode)
	return s
}

// ValidateIntegrity checks that the tables mirror each other and cover every
// day 15..31.
func (t *implTranslator) ValidateIntegrity() bool {
	if len(t.encode) != len(t.decode) {
		return false
	}
	for mask, value := range t.encode {
		if t.decode[value] != mask {
			return false
		}
	}
	for day := translation.FirstDay; day <= translation.LastDay; day++ {
		if _, ok := t.encode[schedule.DayOfMonthBit(day)]; !ok {
			return false
		}
	}
	return true
}

func (t *implTranslator) count(fn func(s *translation.Stats)) {
	t.mu.Lock()
	fn(&t.stats)
	t.mu.Unlock()
}
