package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"playlistgen/internal/audiotag"
	"playlistgen/internal/logging"
	"playlistgen/internal/playlist"
)

type inspectRow struct {
	File        string `json:"file"`
	Artist      string `json:"artist"`
	Title       string `json:"title"`
	TagArtist   string `json:"tag_artist,omitempty"`
	TagTitle    string `json:"tag_title,omitempty"`
	TagFormat   string `json:"tag_format,omitempty"`
	TagReadable bool   `json:"tag_readable"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Compare filename-derived metadata with embedded ID3 tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			builder, logger, logs, err := ctx.newBuilder(cmd)
			if err != nil {
				return err
			}
			defer logs.Close()
			names, err := builder.AudioFiles()
			if err != nil {
				return err
			}

			rows := make([]inspectRow, 0, len(names))
			for _, name := range names {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				artist, title, _ := playlist.SplitArtistTitle(playlist.StripAudioExt(name), cfg.Playlist.UnknownArtist)
				row := inspectRow{File: name, Artist: artist, Title: title}

				tags, err := audiotag.Read(filepath.Join(cfg.Paths.MusicDir, name))
				switch {
				case errors.Is(err, audiotag.ErrNoTags):
				case err != nil:
					logger.Warn("tag read failed", logging.String(logging.FieldFile, name), logging.Error(err))
				case tags.Empty():
					row.TagFormat = tags.Format
				default:
					row.TagReadable = true
					row.TagArtist = tags.Artist
					row.TagTitle = tags.Title
					row.TagFormat = tags.Format
				}
				rows = append(rows, row)
			}

			if asJSON {
				return writeJSON(cmd, rows)
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No audio files found")
				return nil
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				format := r.TagFormat
				if !r.TagReadable {
					format = "-"
				}
				table = append(table, []string{r.File, r.Artist, r.Title, r.TagArtist, r.TagTitle, format})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Artist", "Title", "Tag Artist", "Tag Title", "Tags"},
				table,
				nil,
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output rows as JSON")
	return cmd
}
