package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewLinkCmd создаёт группу команд для просмотра link.
func NewLinkCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Inspect links",
	}

	cmd.AddCommand(newLinkListCmd(clientFn, outputFn))

	return cmd
}

func newLinkListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all links",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			links, err := client.ListLinks(cmd.Context())
			if err != nil {
				return err
			}

			headers := []string{"NAME", "PARAMETERS", "TRANSPORTS"}
			rows := make([][]string, len(links))
			for i, l := range links {
				rows[i] = []string{l.Name, formatParameters(l.Parameters), strings.Join(l.Transports, ", ")}
			}

			out.Print(headers, rows, links)
			return nil
		},
	}
}

// formatParameters выводит параметры как "server, message?"; '?' отмечает необязательные.
func formatParameters(params []ParameterResponse) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
		if !p.Required {
			names[i] += "?"
		}
	}
	return strings.Join(names, ", ")
}
