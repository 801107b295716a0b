package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/bowtext/internal/corpus"
	"github.com/cognicore/bowtext/internal/htmltext"
	"github.com/cognicore/bowtext/pkg/bowtext/config"
	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
	"github.com/cognicore/bowtext/pkg/bowtext/ingest"
	"github.com/cognicore/bowtext/pkg/bowtext/stoplist"
	"github.com/cognicore/bowtext/pkg/bowtext/vector"
	"github.com/cognicore/bowtext/pkg/bowtext/vocab"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (optional)")
		lines      = flag.Bool("lines", false, "Treat every line of an input file as a separate text")
		asJSON     = flag.Bool("json", false, "Print the vocabulary as JSON")
		vectorize  = flag.String("vectorize", "", "Print the frequency vector of this text against the vocabulary")
		suggest    = flag.Bool("suggest-stops", false, "Print stems that look like stopwords")
		dfPercent  = flag.Float64("df", stoplist.DefaultThresholds().DFPercent, "Document frequency percent above which a stem is a stopword candidate")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("at least one input file required")
	}

	loader := config.Loader{ConfigPath: *configPath}
	comp, err := loader.LoadPipeline()
	if err != nil {
		log.Fatal(err)
	}

	items, err := readTexts(flag.Args(), *lines)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("building vocabulary from %d texts", len(items))

	v := vocab.Build(dataset.Texts(items), comp.Tokenizer)
	if err := printVocabulary(os.Stdout, v, *asJSON); err != nil {
		log.Fatal(err)
	}

	if *vectorize != "" {
		printVector(os.Stdout, *vectorize, v, comp.Tokenizer)
	}

	if *suggest {
		th := stoplist.DefaultThresholds()
		th.DFPercent = *dfPercent
		printCandidates(os.Stdout, items, comp.Tokenizer, th)
	}
}

// readTexts loads one text per file, or one per non-blank line. HTML files
// are reduced to their visible text and JSONL files keep their labels.
func readTexts(paths []string, lines bool) ([]dataset.LabeledText, error) {
	var texts []dataset.LabeledText
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".jsonl" {
			items, err := corpus.LoadJSONL(path)
			if err != nil {
				return nil, err
			}
			texts = append(texts, items...)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		content := string(data)
		if ext == ".html" || ext == ".htm" {
			content = htmltext.String(content)
		}

		if !lines {
			texts = append(texts, dataset.LabeledText{Text: content})
			continue
		}
		scanner := bufio.NewScanner(strings.NewReader(content))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, dataset.LabeledText{Text: line})
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return texts, nil
}

func printVocabulary(w io.Writer, v *vocab.Vocabulary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	for i, word := range v.Words() {
		fmt.Fprintf(w, "%4d  %-20s %d\n", i, word, v.Frequency(word))
	}
	return nil
}

func printVector(w io.Writer, text string, v *vocab.Vocabulary, tok *ingest.Tokenizer) {
	vec := vector.Vectorize(text, v, tok)
	fmt.Fprintf(w, "\nvector(%q) = %v\n", text, []float64(vec))
	if best := vector.ArgMax(vec); best >= 0 && vec[best] > 0 {
		fmt.Fprintf(w, "most frequent: %s\n", v.Words()[best])
	}
}

func printCandidates(w io.Writer, items []dataset.LabeledText, tok *ingest.Tokenizer, th stoplist.Thresholds) {
	mgr := stoplist.NewManager(nil)
	candidates := mgr.SuggestCandidates(stoplist.Collect(items, tok), th)
	if len(candidates) == 0 {
		fmt.Fprintln(w, "\nNo stopword candidates.")
		return
	}
	fmt.Fprintln(w, "\nStopword candidates:")
	for _, c := range candidates {
		fmt.Fprintf(w, "  %-20s df=%.0f%% entropy=%.2f score=%.2f\n", c.Stem, c.Reason.DFPercent, c.Reason.CatEntropy, c.Score)
	}
}
