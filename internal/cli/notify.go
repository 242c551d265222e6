package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewNotifyCmd создаёт команду отправки link.
func NewNotifyCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "notify LINK",
		Short: "Send a link notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			resp, err := client.Notify(cmd.Context(), args[0], params)
			if err != nil {
				var apiErr *APIError
				if errors.As(err, &apiErr) {
					for _, e := range apiErr.Errors {
						out.Error(e)
					}
				}
				return err
			}

			out.Success(fmt.Sprintf("Link %s sent via %d channel(s)", resp.Link, len(resp.ChannelsNotified)))
			out.Print(
				[]string{"LINK", "CHANNELS"},
				[][]string{{resp.Link, strings.Join(resp.ChannelsNotified, ", ")}},
				resp,
			)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "Link parameter as key=value (repeatable)")

	return cmd
}
