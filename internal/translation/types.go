package translation

import "time"

// Method identifies how a recurrence bitmask was stored.
type Method int

const (
	// MethodNone means the value was stored as is.
	MethodNone Method = 0
	// MethodCompressed maps a single day 15..31 onto BaseValue+day-15.
	MethodCompressed Method = 3
)

// Compression table bounds.
const (
	BaseValue = 8000
	FirstDay  = 15
	LastDay   = 31
	// Threshold is the first monthly bitmask the store cannot hold (day 15).
	Threshold = 1 << (FirstDay - 1)
)

// Metadata describes one encoding so it can be reversed later.
type Metadata struct {
	Method          Method `json:"encoding_method"`
	OriginalBitmask int    `json:"original_bitmask,omitempty"`
	EncodedValue    int    `json:"encoded_value,omitempty"`
	Day             int    `json:"day,omitempty"`
	TaskName        string `json:"task_name,omitempty"`
}

// Encoded reports whether a translation took place.
func (m Metadata) Encoded() bool {
	return m.Method != MethodNone
}

// Info is the stored translation attached to a task instance.
type Info struct {
	Metadata
	CreatedAt time.Time `json:"created_at"`
}

// Stats is a snapshot of the translator counters.
type Stats struct {
	TranslationsPerformed int `json:"translations_performed"`
	DecodingsPerformed    int `json:"decoding_performed"`
	CacheHits             int `json:"cache_hits"`
	Errors                int `json:"errors"`
	EncodeTableSize       int `json:"encode_table_size"`
	DecodeTableSize       int `json:"decode_table_size"`
}

// StoreInput is the metadata row written before the task is created.
type StoreInput struct {
	Metadata  Metadata
	CreatedBy string
}
