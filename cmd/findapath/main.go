// Package main provides the entry point for the resume skill analysis service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "findapath",
	Short: "Resume skill analysis service",
	Long:  "Find-a-path analyzes a candidate's skills against a category vocabulary using embeddings, producing per-category strength scores, ranked top categories, and recommended skills.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
