// Package main is the entry point for the lighting gRPC server
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-lighting/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-lighting",
	Short: "RPG lighting gRPC server",
	Long:  `RPG lighting serves eyes adaptation and glare calculations over gRPC.`,
}

func main() {
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
