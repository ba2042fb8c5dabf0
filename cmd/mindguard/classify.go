package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/mindguard"
)

var (
	classifyFile      string
	classifySentences bool
)

// classifyCmd classifies text given on the command line or in a file
var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify text once and exit",
	Long: `Classifies the arguments (joined by spaces) or the contents of --file and
prints the same result block as the interactive prompt.

With --sentences the input is split into sentences first and each one is
classified on its own.

Example:
  mindguard classify "exams are killing me"
  mindguard classify --sentences --file journal.txt`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "read the text to classify from a file")
	classifyCmd.Flags().BoolVarP(&classifySentences, "sentences", "s", false, "classify each sentence separately")
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := classifyInput(classifyFile, args)
	if err != nil {
		return err
	}

	p, err := buildPredictor(cfg, logger)
	if err != nil {
		return err
	}
	return classifyText(cmd.OutOrStdout(), p, text, classifySentences)
}

func classifyInput(file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", errors.New("nothing to classify: pass text arguments or --file")
	}
	return strings.Join(args, " "), nil
}

func classifyText(out io.Writer, p predictor, text string, perSentence bool) error {
	if !perSentence {
		decision, err := p.Predict(text)
		if err != nil {
			return err
		}
		printResult(out, decision.Label)
		return nil
	}

	doc, err := mindguard.NewDocument(text)
	if err != nil {
		return err
	}
	for _, sent := range doc.Sentences() {
		decision, err := p.Predict(sent.Text)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%q\n", sent.Text)
		printResult(out, decision.Label)
	}
	return nil
}
