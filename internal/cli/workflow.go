package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewWorkflowCmd создаёт группу команд для управления workflow.
func NewWorkflowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Manage workflows",
	}

	cmd.AddCommand(
		newWorkflowListCmd(clientFn, outputFn),
		newWorkflowRunCmd(clientFn, outputFn),
	)

	return cmd
}

func newWorkflowListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workflows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			workflows, err := client.ListWorkflows(cmd.Context())
			if err != nil {
				return err
			}

			headers := []string{"NAME", "DESCRIPTION", "PARAMETERS", "STEPS"}
			rows := make([][]string, len(workflows))
			for i, w := range workflows {
				steps := make([]string, len(w.Steps))
				for j, s := range w.Steps {
					steps[j] = s.Name + "→" + s.Link
				}
				rows[i] = []string{w.Name, w.Description, formatParameters(w.Parameters), strings.Join(steps, ", ")}
			}

			out.Print(headers, rows, workflows)
			return nil
		},
	}
}

func newWorkflowRunCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "run NAME",
		Short: "Run a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			result, err := client.RunWorkflow(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			if result.Error != "" {
				if out.jsonMode {
					out.JSON(result)
				}
				return fmt.Errorf("workflow %s: %s", result.WorkflowName, result.Error)
			}

			headers := []string{"STEP", "LINK", "SUCCESS", "TRANSPORTS", "ERROR"}
			rows := make([][]string, len(result.StepResults))
			failed := 0
			for i, s := range result.StepResults {
				if !s.Success {
					failed++
				}
				rows[i] = []string{
					s.StepName,
					s.LinkName,
					strconv.FormatBool(s.Success),
					strings.Join(s.NotifiedTransports, ", "),
					s.Error,
				}
			}

			out.Print(headers, rows, result)

			if !result.Success {
				return fmt.Errorf("workflow %s: %d of %d steps failed", result.WorkflowName, failed, len(result.StepResults))
			}
			out.Success(fmt.Sprintf("Workflow %s completed: %d step(s)", result.WorkflowName, len(result.StepResults)))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "Workflow parameter as key=value (repeatable)")

	return cmd
}
