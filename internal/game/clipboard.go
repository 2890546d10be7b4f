package game

import (
	"fmt"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/atotto/clipboard"
)

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// copySummary formats the final score and hands it to write.
func copySummary(write func(string) error, sm cannon.Summary) error {
	if err := write(scoreLine(sm)); err != nil {
		return fmt.Errorf("copy score to clipboard: %w", err)
	}
	return nil
}

// scoreLine is the text placed on the clipboard.
func scoreLine(sm cannon.Summary) string {
	return "Cannon Ball: " + sm.String()
}
