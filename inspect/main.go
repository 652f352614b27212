// Command inspect runs the writing aids on a piece of text from the command
// line, to check a thesaurus build or the tokenizer's segmentation without an
// editor.
//
//	inspect -build-from bunruidb.csv -encoding sjis -dict dictionary.db
//	inspect -dict dictionary.db -cursor 0 猫が好き
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"

	novelwriting "github.com/tassa-yoniso-manasi-karoto/go-novelwriting"
)

type report struct {
	Segmented  string                        `json:"segmented"`
	Kana       string                        `json:"kana"`
	Tokens     novelwriting.Tokens           `json:"tokens"`
	Hover      *novelwriting.HoverResult     `json:"hover,omitempty"`
	Synonyms   []novelwriting.CompletionItem `json:"synonyms,omitempty"`
	Status     novelwriting.StatusLine       `json:"status"`
	Statistics *novelwriting.StyleDigest     `json:"statistics,omitempty"`
}

func main() {
	var (
		dictPath  = flag.String("dict", "", "thesaurus database (default: XDG data dir)")
		sysDict   = flag.String("sysdict", "ipa", "kagome system dictionary: ipa or uni")
		userDict  = flag.String("userdict", "", "kagome user dictionary")
		cursor    = flag.Int("cursor", -1, "cursor offset (runes) for hover and synonyms")
		buildFrom = flag.String("build-from", "", "build the thesaurus database from this CSV and exit")
		encName   = flag.String("encoding", "utf8", "CSV encoding: utf8, sjis or eucjp")
		asJSON    = flag.Bool("json", false, "print the report as JSON")
		dump      = flag.Bool("dump", false, "dump the raw tokens")
		debug     = flag.Bool("debug", false, "log to stderr")
	)
	flag.Parse()

	if *debug {
		novelwriting.EnableDebugLog()
	} else {
		novelwriting.SetLogOutput(os.Stderr, zerolog.WarnLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *buildFrom != "" {
		if err := build(ctx, *buildFrom, *dictPath, *encName); err != nil {
			fatal(err)
		}
		return
	}

	text, err := readText(flag.Args())
	if err != nil {
		fatal(err)
	}

	opts := []novelwriting.Option{
		novelwriting.WithSystemDictionary(novelwriting.SystemDictionary(*sysDict)),
		novelwriting.WithUserDictionary(*userDict),
		novelwriting.WithInitFailureHandler(func(err error) {
			color.Yellow.Printf("warning: %v\n", err)
		}),
	}
	if *dictPath != "" {
		opts = append(opts, novelwriting.WithDictionaryPath(*dictPath))
	}
	mgr := novelwriting.NewManager(opts...)
	defer mgr.Close()

	// a missing thesaurus still leaves hover and statistics usable
	if err := mgr.Init(ctx); err != nil && mgr.TokenizerState() != novelwriting.Ready {
		fatal(err)
	}

	rep, err := analyze(ctx, mgr, text, *cursor)
	if err != nil {
		fatal(err)
	}

	switch {
	case *asJSON:
		b, err := json.Marshal(rep)
		if err != nil {
			fatal(err)
		}
		os.Stdout.Write(pretty.Color(pretty.Pretty(b), nil))
	case *dump:
		pp.BufferFoldThreshold = 100000
		pp.Println(rep.Tokens)
	default:
		printReport(rep)
	}
}

func build(ctx context.Context, csvPath, dictPath, encName string) error {
	enc, err := parseEncoding(encName)
	if err != nil {
		return err
	}
	if dictPath == "" {
		if dictPath, err = novelwriting.DefaultDictionaryPath(); err != nil {
			return err
		}
	}
	f, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := novelwriting.BuildThesaurusStore(ctx, dictPath, f, novelwriting.WithSourceEncoding(enc))
	if err != nil {
		return err
	}
	color.Green.Printf("%d entries written to %s\n", n, dictPath)
	return nil
}

func parseEncoding(name string) (novelwriting.SourceEncoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "utf8", "":
		return novelwriting.EncodingUTF8, nil
	case "sjis", "shiftjis", "cp932":
		return novelwriting.EncodingShiftJIS, nil
	case "eucjp":
		return novelwriting.EncodingEUCJP, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", name)
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func analyze(ctx context.Context, mgr *novelwriting.Manager, text string, cursor int) (*report, error) {
	stats, err := mgr.Stats(text)
	if err != nil {
		return nil, err
	}
	rep := &report{Status: mgr.Digest(text), Statistics: stats}

	// the first line is what hover and completion look at
	line, _, _ := strings.Cut(text, "\n")
	if cursor >= 0 {
		if rep.Hover, err = mgr.Hover(line, cursor); err != nil {
			return nil, err
		}
		if mgr.ThesaurusState() == novelwriting.Ready {
			if rep.Synonyms, err = mgr.Complete(ctx, line, cursor); err != nil {
				return nil, err
			}
		}
	}

	tokens, err := mgr.Tokenize(text)
	if err != nil {
		return nil, err
	}
	rep.Tokens = tokens
	rep.Segmented = tokens.Segmented()
	rep.Kana = tokens.Kana()
	return rep, nil
}

func printReport(rep *report) {
	color.Cyan.Println(rep.Segmented)
	color.Gray.Println(rep.Kana)
	fmt.Println()

	if rep.Hover != nil {
		color.Bold.Printf("hover: ")
		fmt.Printf("%s [%d, %d]\n", rep.Hover.BaseForm, rep.Hover.Span.Start, rep.Hover.Span.End)
	}
	for _, item := range rep.Synonyms {
		color.Green.Print("  ", item.Label)
		color.Gray.Println("  ", strings.ReplaceAll(item.Detail, "\n", " / "))
	}
	if len(rep.Synonyms) > 0 {
		fmt.Println()
	}

	if rep.Status.Ready {
		color.Bold.Println(rep.Status.Text)
		fmt.Println(rep.Status.Tooltip)
	} else {
		color.Yellow.Println(rep.Status.Text)
	}
}

func fatal(err error) {
	color.Redln("error:", err)
	os.Exit(1)
}
