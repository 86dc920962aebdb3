package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/extract"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kitgen"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/util"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a study kit from a document or image",
	Long: `Extracts text from the given file (plain text, Markdown, PDF) or passes
an image straight to the model, then generates the full study kit and
prints it as JSON. Use --out to save it for later export or study.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	res, err := extract.FromFile(args[0], cfg.ContentBudget)
	if err != nil {
		return fmt.Errorf("extract %s: %w", args[0], err)
	}

	provider, err := providers.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	gen := kitgen.NewGenerator(provider, log, cfg.TutorBudget)
	sess, err := gen.GenerateStudyKit(cmd.Context(), kitgen.GenerateInput{
		Content:        res.Text,
		Image:          res.Image,
		Language:       cfg.Language,
		NoteStyle:      kit.ParseNoteStyle(flagNoteStyle),
		FlashcardCount: cfg.FlashcardCount,
		QuizCount:      cfg.QuizCount,
	})
	if err != nil {
		return err
	}
	sess.ID = uuid.NewString()
	sess.OriginalText = res.Text

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if flagOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := util.EnsureDir(filepath.Dir(flagOut)); err != nil {
		return err
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	log.Info("session saved", "path", flagOut, "title", sess.Title)
	return nil
}
