package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Search result cards show at most this many cast names.
const maxCastDisplay = 8

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search the catalog for videos and actresses",
	Long: `Search the catalog for videos and actresses.

The query matches video titles, catalog codes, and actress names;
videos featuring a matched actress are included too.

Examples:
  avdex search yui
  avdex search ABC-123
  avdex search yui --censored false --min-video-rate 80
  avdex search yui --tags 3,7`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("censored", "", "Filter: any, true, or false")
	searchCmd.Flags().String("has-special", "", "Filter: any, true, or false")
	searchCmd.Flags().Int64Slice("actress-types", nil, "Filter: actress type ids (OR)")
	searchCmd.Flags().Int64Slice("costumes", nil, "Filter: costume ids (OR)")
	searchCmd.Flags().Int64Slice("scenes", nil, "Filter: scene ids (OR)")
	searchCmd.Flags().Int64Slice("tags", nil, "Filter: tag ids (OR)")
	searchCmd.Flags().Int("min-video-rate", -1, "Filter: minimum video rate [0,100]")
	searchCmd.Flags().Int("min-sex-rate", -1, "Filter: minimum sex rate [0,100]")
	searchCmd.Flags().Int("min-actress-rate", -1, "Filter: minimum actress rate [0,100]")
	searchCmd.Flags().Int("min-acting-rate", -1, "Filter: minimum acting rate [0,100]")
	searchCmd.Flags().Int("min-voice-rate", -1, "Filter: minimum voice rate [0,100]")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	criteria := criteriaFromFlags(cmd)

	client := NewClient(serverURL, authToken)
	result, err := client.Search(query, criteria)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	printSearchHuman(result, criteria != nil)
	return nil
}

// criteriaFromFlags builds the criteria body, or nil when no filter
// flag was set.
func criteriaFromFlags(cmd *cobra.Command) map[string]any {
	criteria := map[string]any{}

	if v, _ := cmd.Flags().GetString("censored"); v != "" {
		criteria["censored"] = v
	}
	if v, _ := cmd.Flags().GetString("has-special"); v != "" {
		criteria["has_special"] = v
	}

	idFlags := map[string]string{
		"actress-types": "actress_type_ids",
		"costumes":      "costume_ids",
		"scenes":        "scene_ids",
		"tags":          "tag_ids",
	}
	for flagName, key := range idFlags {
		if ids, _ := cmd.Flags().GetInt64Slice(flagName); len(ids) > 0 {
			criteria[key] = ids
		}
	}

	rateFlags := map[string]string{
		"min-video-rate":   "min_video_rate",
		"min-sex-rate":     "min_sex_rate",
		"min-actress-rate": "min_actress_rate",
		"min-acting-rate":  "min_acting_rate",
		"min-voice-rate":   "min_voice_rate",
	}
	for flagName, key := range rateFlags {
		if v, _ := cmd.Flags().GetInt(flagName); v >= 0 {
			criteria[key] = v
		}
	}

	if len(criteria) == 0 {
		return nil
	}
	return criteria
}

func printSearchHuman(r *SearchResponse, filtered bool) {
	if len(r.Actresses) > 0 {
		fmt.Printf("Actresses (%d):\n", len(r.Actresses))
		for _, a := range r.Actresses {
			fmt.Printf("  %6d  %s\n", a.ID, a.Name)
		}
		fmt.Println()
	}

	videos := r.Videos
	if filtered {
		videos = r.Filtered
		fmt.Printf("Videos (%d of %d after filters):\n", len(r.Filtered), len(r.Videos))
	} else {
		fmt.Printf("Videos (%d):\n", len(videos))
	}
	if len(videos) == 0 {
		fmt.Println("  none")
		return
	}

	fmt.Printf("  %6s │ %-40s │ %-10s │ %s\n", "ID", "TITLE", "CODE", "CAST")
	fmt.Println("  ───────┼──────────────────────────────────────────┼────────────┼─────")
	for _, v := range videos {
		title := v.Name
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		code := ""
		if v.ContentID != nil {
			code = *v.ContentID
		}
		cast := v.Cast
		if len(cast) > maxCastDisplay {
			cast = append(cast[:maxCastDisplay:maxCastDisplay], "...")
		}
		fmt.Printf("  %6d │ %-40s │ %-10s │ %s\n",
			v.ID, title, code, strings.Join(cast, ", "))
	}
}
