package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var videoCmd = &cobra.Command{
	Use:   "video <id>",
	Short: "Show one video with cast and tag details",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideoCmd,
}

var actressCmd = &cobra.Command{
	Use:   "actress <id>",
	Short: "Show one actress record",
	Args:  cobra.ExactArgs(1),
	RunE:  runActressCmd,
}

func init() {
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(actressCmd)
}

func runVideoCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client := NewClient(serverURL, authToken)
	detail, err := client.Video(id)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(detail)
		return nil
	}

	v := detail.Video
	fmt.Printf("Video:      %s (id %d)\n", v.Name, v.ID)
	if v.ContentID != nil {
		fmt.Printf("Code:       %s\n", *v.ContentID)
	}
	if detail.PublisherName != nil {
		fmt.Printf("Publisher:  %s\n", *detail.PublisherName)
	}
	if v.PublishDate != nil {
		fmt.Printf("Published:  %s\n", *v.PublishDate)
	}
	if v.Length != nil {
		fmt.Printf("Length:     %d min\n", *v.Length)
	}
	if v.Censored != nil {
		fmt.Printf("Censored:   %t\n", *v.Censored)
	}

	if len(detail.Cast) > 0 {
		parts := make([]string, 0, len(detail.Cast))
		for _, m := range detail.Cast {
			if m.Age != nil {
				parts = append(parts, fmt.Sprintf("%s (%d)", m.Name, *m.Age))
			} else {
				parts = append(parts, m.Name)
			}
		}
		fmt.Printf("Cast:       %s\n", strings.Join(parts, ", "))
	}

	printNameList("Types", detail.ActressTypes)
	printNameList("Costumes", detail.Costumes)
	printNameList("Scenes", detail.Scenes)
	printNameList("Tags", detail.Tags)

	if v.Storyline != nil {
		fmt.Printf("\n%s\n", *v.Storyline)
	}
	return nil
}

func printNameList(label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Printf("%-11s %s\n", label+":", strings.Join(names, ", "))
}

func runActressCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client := NewClient(serverURL, authToken)
	a, err := client.Actress(id)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(a)
		return nil
	}

	fmt.Printf("Actress:    %s (id %d)\n", a.Name, a.ID)
	if a.DateOfBirth != nil {
		fmt.Printf("Born:       %s\n", *a.DateOfBirth)
	}
	if a.Height != nil {
		fmt.Printf("Height:     %d cm\n", *a.Height)
	}
	if a.Cup != nil {
		fmt.Printf("Cup:        %s\n", *a.Cup)
	}
	if a.PersonalRate != nil {
		fmt.Printf("Rate:       %d\n", *a.PersonalRate)
	}
	if a.PersonalComment != nil {
		fmt.Printf("\n%s\n", *a.PersonalComment)
	}
	return nil
}
