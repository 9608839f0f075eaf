package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"playlistgen/internal/playlist"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the tracks a build would produce without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, _, logs, err := ctx.newBuilder(cmd)
			if err != nil {
				return err
			}
			defer logs.Close()
			tracks, err := builder.Build(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, tracks)
			}

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				for _, t := range tracks {
					fmt.Fprintln(out, strings.Join([]string{t.Artist, t.Title, t.File, t.Artwork}, "\t"))
				}
				return nil
			}
			if len(tracks) == 0 {
				fmt.Fprintln(out, "No tracks found")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Artist", "Title", "File", "Artwork"},
				trackRows(tracks),
				[]columnAlignment{alignRight},
			))
			fmt.Fprintln(out, plural(len(tracks), "track"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output tracks as JSON")
	return cmd
}

func trackRows(tracks []playlist.Track) [][]string {
	rows := make([][]string, 0, len(tracks))
	for i, t := range tracks {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Artist, t.Title, t.File, t.Artwork})
	}
	return rows
}
