package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"headlinesai/internal/model"
	"headlinesai/pkg/llm"
	"headlinesai/pkg/news"

	"github.com/joho/godotenv"
)

func main() {
	topic := flag.String("topic", "", "news topic to search for")
	days := flag.Int("days", 7, "number of days to look back (1-30)")
	noSummary := flag.Bool("no-summary", false, "print headlines only, skip summarization")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if *topic == "" {
		log.Fatalf("topic is required")
	}
	if *days < model.MinLookbackDays || *days > model.MaxLookbackDays {
		log.Fatalf("days must be between %d and %d", model.MinLookbackDays, model.MaxLookbackDays)
	}

	var summarizer llm.Summarizer
	if !*noSummary {
		client, err := llm.NewOpenRouterClient(os.Getenv("OPENROUTER_API_KEY"), os.Getenv("OPENROUTER_MODEL"))
		if err != nil {
			log.Fatalf("configuration error: %v", err)
		}
		summarizer = client
	}

	ctx := context.Background()
	client := news.NewGoogleNewsClient()

	headlines, err := client.Search(ctx, *topic, *days)
	if err != nil {
		log.Fatalf("error fetching news: %v", err)
	}

	if len(headlines) == 0 {
		fmt.Printf("No news found for %q. Try a different search term or more days.\n", *topic)
		return
	}

	fmt.Printf("Found %d articles for %q (last %d days)\n\n", len(headlines), *topic, *days)
	for i, h := range headlines {
		fmt.Printf("%d. %s\n   %s | %s\n\n", i+1, h.Title, h.Source, h.PublishedAt.Format(time.RFC1123))
	}

	if *noSummary {
		return
	}

	inputs := make([]llm.SummaryInput, len(headlines))
	for i, h := range headlines {
		inputs[i] = llm.SummaryInput{
			Title:       h.Title,
			Source:      h.Source,
			PublishedAt: h.PublishedAt,
		}
	}

	result, err := summarizer.Summarize(ctx, inputs)
	if err != nil {
		log.Fatalf("error generating summary: %v", err)
	}

	fmt.Printf("Summary (%s):\n%s\n", result.ModelUsed, result.Text)
}
