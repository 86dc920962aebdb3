package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/mindmap"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/study"
)

var exportCmd = &cobra.Command{
	Use:   "export [session.json]",
	Short: "Export a saved session as CSV, numbered outline or Mermaid markup",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	var sess kit.StudySession
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("parse session: %w", err)
	}

	var body, defaultName string
	switch flagFormat {
	case "csv":
		body = study.NewDeck(sess.Flashcards).ExportCSV()
		defaultName = "study-kit-quizlet.csv"
	case "outline":
		body = mindmap.Outline(sess.Mindmap)
		defaultName = "mindmap-numbered.txt"
	case "mermaid":
		body = mindmap.Mermaid(sess.Mindmap)
		defaultName = "mindmap-mermaid.mmd"
	default:
		return fmt.Errorf("unknown format %q: want csv, outline or mermaid", flagFormat)
	}

	out := flagOut
	if out == "" {
		out = defaultName
	}
	if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
