package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/pkg/datemath"
)

const promptTemplate = `You extract task parameters from chat messages. Today is %[1]s.

RULES:
1. If the task name is in quotes, TaskName is exactly the quoted text. Add no words around it.
2. Assignees come from phrases like "for X", "with X" or "to X". Several names are comma-separated.
3. "remind me" means Assignees = %[2]q.
4. Recognize recurrence (daily, weekly, monthly, quarterly, yearly) and encode it with the tables below.
5. Tasks are one-time unless the message clearly asks for repetition. "next Monday", "tomorrow" and "on <date>" are one-time.
6. Ask a question only when TaskName or Assignees cannot be determined.

HINTS:
- "managed by NAME" sets Controllers to NAME.
- "priority", "urgent" or "add to priority list" sets AddToPriorityList to 1.
- "with checklist: X, Y" sets Items to "X,Y". Items are comma-separated, never newline-separated.
- Resolve relative dates such as "next Friday" to YYYY-MM-DD.

RECURRENCE ENCODING:
- Daily: IsRecurring=1, FreqType=1, FreqRecurrance=1, FreqInterval=1.
- Weekly: IsRecurring=1, FreqType=2, FreqRecurrance is a weekday bitmask
  (Sunday=1, Monday=2, Tuesday=4, Wednesday=8, Thursday=16, Friday=32, Saturday=64; add values for several days).
  FreqInterval is the number of weeks between occurrences (2 for biweekly or every other week).
- Monthly: IsRecurring=1, FreqType=3, FreqRecurrance has bit (day-1) set for the day of month (1st=1, 2nd=2, 3rd=4, 10th=512), FreqInterval=1.
- Quarterly: IsRecurring=1, FreqType=3, FreqInterval=3. The next quarter end is %[3]s; use it as DueDate.
- Yearly: IsRecurring=1, FreqType=6, FreqInterval=1, FreqRecurrance is a month bitmask
  (Jan=1, Feb=2, Mar=4, Apr=8, May=16, Jun=32, Jul=64, Aug=128, Sep=256, Oct=512, Nov=1024, Dec=2048).
- BusinessDayBehavior is 1 when weekends should be skipped, else 0.

ANSWER FORMAT:
One short sentence describing the task, followed by this JSON block:

` + "```json" + `
{
  "TaskName": "<task name>",
  "Assignees": "<comma-separated names>",
  "Controllers": %[2]q,
  "DueDate": "<YYYY-MM-DD or null>",
  "DueTime": "<HH:MM or null>",
  "SoftDueDate": "<YYYY-MM-DD or null>",
  "Items": "<comma-separated checklist items or empty>",
  "IsRecurring": 0,
  "FreqType": 0,
  "FreqRecurrance": 0,
  "FreqInterval": 1,
  "BusinessDayBehavior": 0,
  "AddToPriorityList": 0
}
` + "```" + `

Always include the JSON block. The main controller is %[2]q.`

// SystemPrompt renders the extraction instructions. hint is appended verbatim.
func SystemPrompt(today, quarterEnd time.Time, mainController, hint string) string {
	return fmt.Sprintf(promptTemplate,
		today.Format(datemath.DateLayout),
		mainController,
		quarterEnd.Format(datemath.DateLayout),
	) + hint
}

// Hint tells the model which fields were already found in the message.
func Hint(pre model.TaskParameters, message string) string {
	detected := detectedFields(pre)
	if len(detected) == 0 {
		return ""
	}

	b, err := json.Marshal(detected)
	if err != nil {
		return ""
	}

	hint := "\n\nHINT: I already detected: " + string(b)
	if mentionsNextWeekday(message) {
		hint += "\nNOTE: 'next [weekday]' means ONE-TIME task, not recurring!"
	}
	return hint
}

// detectedFields keeps the non-zero fields of pre, keyed by their JSON names.
func detectedFields(pre model.TaskParameters) map[string]any {
	b, err := json.Marshal(pre)
	if err != nil {
		return nil
	}
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return nil
	}
	for k, v := range all {
		switch t := v.(type) {
		case float64:
			if t == 0 {
				delete(all, k)
			}
		case string:
			if t == "" {
				delete(all, k)
			}
		case bool:
			if !t {
				delete(all, k)
			}
		case nil:
			delete(all, k)
		}
	}
	return all
}

var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// mentionsNextWeekday matches "next" and any weekday name anywhere in the
// message, not only adjacent ones.
func mentionsNextWeekday(message string) bool {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "next") {
		return false
	}
	for _, d := range weekdayNames {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}
