package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"task-assistant/pkg/schedule"
)

// Fallback values used when an integer field is present but cannot be read.
var intFieldDefaults = map[string]int{
	"IsRecurring":         0,
	"FreqType":            1,
	"FreqRecurrance":      1,
	"FreqInterval":        1,
	"BusinessDayBehavior": 0,
	"Activate":            1,
	"IsReminder":          1,
	"AddToPriorityList":   0,
}

// ParametersFromJSON converts the free-form object returned by the language
// model into TaskParameters. This is the only place loosely typed values are
// accepted; everything downstream works with the typed struct.
func ParametersFromJSON(raw map[string]any) TaskParameters {
	var p TaskParameters

	p.TaskName = str(raw["TaskName"])
	p.MainController = str(raw["MainController"])
	p.Controllers = str(raw["Controllers"])
	p.Assignees = joinList(raw["Assignees"])
	p.DueDate = str(raw["DueDate"])
	p.LocalDueDate = str(raw["LocalDueDate"])
	p.DueTime = str(raw["DueTime"])
	p.SoftDueDate = str(raw["SoftDueDate"])
	p.FinalDueDate = str(raw["FinalDueDate"])
	p.Items = joinList(raw["Items"])
	p.ReminderDate = str(raw["ReminderDate"])

	p.IsRecurring = intField(raw, "IsRecurring")
	p.FreqType = schedule.FreqType(freqTypeField(raw))
	p.FreqRecurrance = intField(raw, "FreqRecurrance")
	p.FreqInterval = intField(raw, "FreqInterval")
	p.BusinessDayBehavior = intField(raw, "BusinessDayBehavior")
	p.Activate = intField(raw, "Activate")
	p.IsReminder = intField(raw, "IsReminder")
	p.AddToPriorityList = PriorityFlag(raw["AddToPriorityList"])

	return p
}

// FreqTypeFromText maps a textual or numeric frequency type to its code.
// Unknown text maps to daily.
func FreqTypeFromText(s string) int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day", "1":
		return 1
	case "weekly", "week", "2":
		return 2
	case "monthly", "month", "3":
		return 3
	case "yearly", "year", "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	default:
		return 1
	}
}

// BoolFlag converts boolean-like values to 0/1. ok is false when the value is
// not recognizable.
func BoolFlag(v any) (n int, ok bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case float64:
		return int(t), !math.IsNaN(t)
	case int:
		return t, true
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		switch s {
		case "yes", "true", "1", "on":
			return 1, true
		case "no", "false", "0", "off", "":
			return 0, true
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

// PriorityFlag reads the priority-list flag. "priority" counts as yes and any
// unrecognized value counts as no.
func PriorityFlag(v any) int {
	if s, ok := v.(string); ok && strings.EqualFold(strings.TrimSpace(s), "priority") {
		return 1
	}
	n, ok := BoolFlag(v)
	if !ok || n != 1 {
		return 0
	}
	return 1
}

func intField(raw map[string]any, key string) int {
	v, present := raw[key]
	if !present || v == nil {
		return 0
	}
	n, ok := BoolFlag(v)
	if !ok {
		return intFieldDefaults[key]
	}
	return n
}

func freqTypeField(raw map[string]any) int {
	v, present := raw["FreqType"]
	if !present || v == nil {
		return 0
	}
	if s, ok := v.(string); ok {
		if strings.TrimSpace(s) == "" || strings.TrimSpace(s) == "0" {
			return 0
		}
		return FreqTypeFromText(s)
	}
	return intField(raw, "FreqType")
}

func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(t)
		if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
			return ""
		}
		return s
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// joinList accepts either a comma-joined string or a JSON array.
func joinList(v any) string {
	arr, ok := v.([]any)
	if !ok {
		return str(v)
	}
	parts := make([]string, 0, len(arr))
	for _, a := range arr {
		if s := str(a); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ",")
}
