package validation

// Input limits.
const (
	MaxMessageLength     = 5000
	MinTaskNameLength    = 3
	MaxTaskNameLength    = 200
	MaxAssignees         = 10
	MinAssigneeLength    = 2
	MaxAssigneeLength    = 100
	MaxChecklistItems    = 50
	MaxChecklistItemSize = 200
	MaxWordLength        = 100
	MaxFreqInterval      = 365
)

// DateLayouts are the accepted due date layouts, tried in order.
var DateLayouts = []string{"2006-01-02", "1/2/2006", "1-2-2006", "2/1/2006"}
