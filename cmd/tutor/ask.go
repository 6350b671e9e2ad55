package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/tutor-bot/internal/tutor"
)

var errEmptyQuestion = errors.New("a question is required")

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Answer a single question and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		showCategory, _ := cmd.Flags().GetBool("show-category")
		return ask(cmd, tutor.NewDefault(zap.NewNop()), args, showCategory)
	},
}

func init() {
	askCmd.Flags().Bool("show-category", false, "Print the detected category before the answer")
}

func ask(cmd *cobra.Command, t *tutor.Tutor, args []string, showCategory bool) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("%w\n\n%s", errEmptyQuestion, cmd.UsageString())
	}

	reply := t.Answer(question, nil)
	out := cmd.OutOrStdout()
	if showCategory {
		fmt.Fprintf(out, "Category: %s\n\n", reply.Category)
	}
	fmt.Fprintln(out, reply.Answer)
	return nil
}
