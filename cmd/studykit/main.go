// studykit is the terminal front end: generate a study kit from a file,
// export it in shareable formats, or study it interactively.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/config"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
)

var (
	flagLanguage   string
	flagNoteStyle  string
	flagFlashcards int
	flagQuiz       int
	flagOut        string
	flagFormat     string

	cfg config.Config
	log *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "studykit",
	Short: "Turn study material into flashcards, notes, quizzes and mindmaps",
	Long: `studykit converts documents and images into a complete study kit:
concept definitions, structured notes, multi-format flashcards, a quiz
and a hierarchical mindmap, with an AI tutor grounded in the material.

Run without arguments to start the interactive study interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")
		cfg = config.Load()
		if flagLanguage != "" {
			cfg.Language = flagLanguage
		}
		if flagFlashcards > 0 {
			cfg.FlashcardCount = flagFlashcards
		}
		if flagQuiz > 0 {
			cfg.QuizCount = flagQuiz
		}
		var err error
		log, err = logging.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagLanguage, "language", "", "language for generated content")
	rootCmd.PersistentFlags().StringVar(&flagNoteStyle, "style", "Cornell", "note style: Cornell, Summary, Compact or Table")
	rootCmd.PersistentFlags().IntVar(&flagFlashcards, "flashcards", 0, "number of flashcards to generate")
	rootCmd.PersistentFlags().IntVar(&flagQuiz, "quiz", 0, "number of quiz questions to generate")

	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the session JSON to a file instead of stdout")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (defaults to a name derived from the format)")
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "export format: csv, outline or mermaid")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(studyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
