package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/mindguard"
)

const (
	prompt   = "\nHow are you feeling? (type 'exit' to quit): "
	farewell = "Take care! 💙"
)

// predictor is what the loop needs from *mindguard.Predictor.
type predictor interface {
	Predict(text string) (mindguard.Decision, error)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Initializing MindGuard...")

	session := logger.With(zap.String("session", uuid.NewString()))
	p, err := buildPredictor(cfg, session)
	if err != nil {
		return err
	}

	printBanner(out)
	return runLoop(cmd.InOrStdin(), out, p, session)
}

func printBanner(out io.Writer) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintln(out, "   MindGuard: Mental Stress Detector")
	fmt.Fprintln(out, rule)
}

// runLoop prompts for a line, prints the verdict and repeats until the user
// types "exit" (any case) or input ends.
func runLoop(in io.Reader, out io.Writer, p predictor, log *zap.Logger) error {
	reader := bufio.NewReader(in)
	turns := 0

	for {
		fmt.Fprint(out, prompt)

		line, err := reader.ReadString('\n')
		atEOF := err == io.EOF
		if err != nil && !atEOF {
			return fmt.Errorf("read input: %w", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if atEOF && line == "" {
			fmt.Fprintln(out)
			log.Debug("input closed", zap.Int("turns", turns))
			return nil
		}
		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(out, farewell)
			log.Debug("session ended", zap.Int("turns", turns))
			return nil
		}

		decision, err := p.Predict(line)
		if err != nil {
			return err
		}
		turns++
		log.Debug("turn",
			zap.Int("turn", turns),
			zap.String("label", string(decision.Label)),
			zap.String("source", string(decision.Source)))
		printResult(out, decision.Label)

		if atEOF {
			return nil
		}
	}
}

// printResult writes the fixed message block for label. Labels other than
// stress and no_stress read as unsure.
func printResult(out io.Writer, label mindguard.Label) {
	switch label {
	case mindguard.Stress:
		fmt.Fprintln(out, "⚠️  Result: High Mental Stress Detected")
		fmt.Fprintln(out, "   -> Suggestion: Relax, take a deep breath.")
	case mindguard.NoStress:
		fmt.Fprintln(out, "😊 Result: No Significant Stress Detected")
		fmt.Fprintln(out, "   -> Great! Keep up the positive vibes.")
	default:
		fmt.Fprintln(out, "🤔 Result: Unsure")
		fmt.Fprintln(out, "   -> I didn't quite get that. Can you say it differently?")
	}
}
