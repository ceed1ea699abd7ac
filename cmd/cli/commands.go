package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"task-assistant/internal/extractor"
	"task-assistant/internal/model"
	translationUC "task-assistant/internal/translation/usecase"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/schedule"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <message>",
		Short: "Print the schedule record recognized in a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := schedule.New().Parse(strings.Join(args, " "))
			return opts.render(cmd.OutOrStdout(), recordMap(rec))
		},
	}
}

func newExtractCmd(opts *options) *cobra.Command {
	var controller, timezone string

	cmd := &cobra.Command{
		Use:   "extract <message>",
		Short: "Print the parameters pre-extracted from a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := datemath.ParserFor(timezone).Today()
			params := extractor.New(schedule.New()).Extract(strings.Join(args, " "), controller, today)
			return opts.render(cmd.OutOrStdout(), params.ToMap())
		},
	}
	cmd.Flags().StringVar(&controller, "controller", "", "main controller of the requesting user")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "IANA timezone used to resolve relative dates")
	return cmd
}

func newTranslateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <bitmask>",
		Short: "Print the stored value of a monthly day-of-month bitmask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bitmask, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			params := model.TaskParameters{Record: schedule.Record{
				IsRecurring:    1,
				FreqType:       schedule.FreqMonthly,
				FreqRecurrance: bitmask,
				FreqInterval:   1,
			}}
			tr := translationUC.NewTranslator()
			if !tr.NeedsTranslation(params.Record) {
				return opts.render(cmd.OutOrStdout(), map[string]any{
					"bitmask":    bitmask,
					"translated": false,
					"value":      bitmask,
				})
			}

			encoded, md, err := tr.Encode(params)
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), map[string]any{
				"bitmask":    bitmask,
				"translated": true,
				"value":      encoded.FreqRecurrance,
				"day":        md.Day,
				"method":     int(md.Method),
			})
		},
	}
}

func recordMap(r schedule.Record) map[string]any {
	return map[string]any{
		"IsRecurring":         r.IsRecurring,
		"FreqType":            int(r.FreqType),
		"FreqRecurrance":      r.FreqRecurrance,
		"FreqInterval":        r.FreqInterval,
		"BusinessDayBehavior": r.BusinessDayBehavior,
	}
}
