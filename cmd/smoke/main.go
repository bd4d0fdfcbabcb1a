// Command smoke runs a live end-to-end check against the Gemini API. It needs
// GOOGLE_API_KEY in the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shillcollin/genbridge/core"
	"github.com/shillcollin/genbridge/providers/gemini"
)

func main() {
	_ = godotenv.Load()

	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		fmt.Println("smoke: GOOGLE_API_KEY not set; nothing to do")
		os.Exit(1)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	adapter := gemini.New(
		gemini.WithAPIKey(key),
		gemini.WithModel(model),
	)

	if err := runGenerate(ctx, adapter); err != nil {
		fmt.Printf("[generate] failed: %v\n", err)
		os.Exit(1)
	}
	if err := runStream(ctx, adapter); err != nil {
		fmt.Printf("[stream] failed: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, adapter *gemini.Adapter) error {
	res, err := adapter.GenerateText(ctx, core.SimpleRequest("Give a two word greeting."))
	if err != nil {
		return err
	}
	fmt.Printf("[generate] %s (finish=%s)\n", res.Text(), res.FinishReason.Unified)
	return nil
}

func runStream(ctx context.Context, adapter *gemini.Adapter) error {
	stream, err := adapter.StreamText(ctx, core.SimpleRequest("Count from one to five, one number per line."))
	if err != nil {
		return err
	}
	fmt.Print("[stream] ")
	if err := core.StreamToWriter(stream, os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	meta := stream.Meta()
	if meta.Usage.TotalTokens != nil {
		fmt.Printf("[stream] total tokens: %d\n", *meta.Usage.TotalTokens)
	}
	return nil
}
